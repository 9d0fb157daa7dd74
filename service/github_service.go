package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/devfolio/dashboard/catalog"
	"github.com/devfolio/dashboard/config"
	"github.com/devfolio/dashboard/model"
	"github.com/google/go-github/v66/github"

	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"

	"golang.org/x/time/rate"
)

// requests issued per repository once the search returned: languages and contributors
const requestsPerRepository = 2

// GithubService imports the public repositories of an owner as catalog projects
type GithubService interface {
	catalog.Source

	FetchOwnerProjects(ctx context.Context, query model.ImportQuery) ([]model.Project, error)
	GetProjectsDetails(ctx context.Context, projects []model.Project, owner string) ([]model.Project, error)
	FetchDetailsForSingleProject(ctx context.Context, p model.Project, owner string, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- ProjectDetails) error

	HandleRequestErrors(err error) error
}

// ProjectDetails is the per-repository data gathered after the search
type ProjectDetails struct {
	ProjectID    int64
	Technologies []string
	Contributors int
	Commits      int
	Err          error
}

type githubService struct {
	githubClient      *github.Client
	githubRateLimiter *rate.Limiter
	config            config.Config
}

// the local limiter mirrors the github core limit: one token for the search
// and requestsPerRepository tokens for every repository found
// core = 60 calls per hour non-authenticated, 5000 calls authenticated
func NewGithubService(config config.Config, githubClient *github.Client, rateLimiter *rate.Limiter) GithubService {
	return githubService{
		githubClient:      githubClient,
		githubRateLimiter: rateLimiter,
		config:            config,
	}
}

func (s githubService) Name() string {
	return "github:" + s.config.Github.Owner
}

// Load builds a snapshot from the owner repositories. Commit activity stays
// the sample series: the GitHub statistics endpoints answer asynchronously.
func (s githubService) Load(ctx context.Context) (catalog.Snapshot, error) {
	projects, err := s.FetchOwnerProjects(ctx, model.ImportQuery{
		Owner:    s.config.Github.Owner,
		Language: s.config.Github.Language,
		License:  s.config.Github.License,
	})
	if err != nil {
		return catalog.Snapshot{}, err
	}

	profile := catalog.SampleProfile()
	profile.Name = s.config.Github.Owner
	profile.Links = []model.Link{{Label: "GitHub", URL: "https://github.com/" + s.config.Github.Owner}}

	return catalog.Snapshot{
		Projects: projects,
		Activity: catalog.SampleActivity(),
		Profile:  profile,
	}, nil
}

func (s githubService) FetchOwnerProjects(ctx context.Context, query model.ImportQuery) ([]model.Project, error) {
	if !s.githubRateLimiter.Allow() {
		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return []model.Project{}, model.ErrRateLimitReached
	}

	log.WithFields(log.Fields{
		"owner":    query.Owner,
		"licence":  query.License,
		"language": query.Language,
	}).Info("fetch owner repositories from github")

	repos, _, err := s.githubClient.Search.Repositories(
		ctx,
		query.ToGithubQuery(true),
		&github.SearchOptions{
			Sort:  "updated",
			Order: "desc",
			ListOptions: github.ListOptions{
				Page:    1,
				PerPage: 100,
			},
		},
	)

	if err != nil {
		return []model.Project{}, s.HandleRequestErrors(err)
	}

	projects := make([]model.Project, 0, len(repos.Repositories))

	for _, r := range repos.Repositories {
		if r == nil || r.ID == nil || r.Owner == nil || r.Owner.Login == nil || r.Name == nil {
			log.WithField("repository", r.GetFullName()).Debug("repository found with invalid information")
			return []model.Project{}, model.ErrInvalidData
		}

		project := model.Project{
			ID:           r.GetID(),
			Name:         r.GetName(),
			Description:  r.GetDescription(),
			Stars:        r.GetStargazersCount(),
			URL:          r.GetHTMLURL(),
			Contributors: 1,
		}

		if r.UpdatedAt != nil {
			project.LastUpdate = r.UpdatedAt.Format("2006-01-02")
		}

		projects = append(projects, project)
	}

	// consume the tokens for every repository up front, so a project list
	// is never returned with only part of the details loaded
	needed := len(projects) * requestsPerRepository
	if !s.githubRateLimiter.AllowN(time.Now(), needed) {
		log.WithField("requestsNeeded", needed).Warning("not enough requests in rate limiter to load details for all repositories")
		return []model.Project{}, model.ErrRateLimitReached
	}

	projects, err = s.GetProjectsDetails(ctx, projects, query.Owner)
	if err != nil {
		log.WithError(err).Error("unable to get repositories details")
		return []model.Project{}, err
	}

	return projects, nil
}

// GetProjectsDetails loads languages and contributors of every project in
// parallel, at most Tasks.MaxParallelTasksAllowed requests at a time
func (s githubService) GetProjectsDetails(ctx context.Context, projects []model.Project, owner string) ([]model.Project, error) {
	swg := sizedwaitgroup.New(s.config.Tasks.MaxParallelTasksAllowed)
	results := make(chan ProjectDetails, len(projects))

	for _, p := range projects {
		swg.Add()
		go func(p model.Project) {
			_ = s.FetchDetailsForSingleProject(ctx, p, owner, &swg, results)
		}(p)
	}

	log.Debug("waiting for all repositories details to be loaded")
	swg.Wait()
	close(results)

	details := make(map[int64]ProjectDetails, len(projects))
	for result := range results {
		if result.Err != nil {
			return []model.Project{}, result.Err
		}
		details[result.ProjectID] = result
	}

	out := make([]model.Project, len(projects))
	copy(out, projects)

	for i := range out {
		if d, found := details[out[i].ID]; found {
			out[i].Technologies = d.Technologies
			out[i].Contributors = d.Contributors
			out[i].Commits = d.Commits
		}
	}

	return out, nil
}

// FetchDetailsForSingleProject sends the details of one repository on ch.
// The rate limiter is not consulted: the caller reserves the tokens.
func (s githubService) FetchDetailsForSingleProject(ctx context.Context, p model.Project, owner string, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- ProjectDetails) error {
	defer swg.Done()

	log.WithFields(log.Fields{
		"repositoryID": p.ID,
		"repository":   p.Name,
	}).Debug("fetch details for repository")

	languages, _, err := s.githubClient.Repositories.ListLanguages(ctx, owner, p.Name)
	if err != nil {
		err = s.HandleRequestErrors(err)
		ch <- ProjectDetails{ProjectID: p.ID, Err: err}
		return err
	}

	contributors, _, err := s.githubClient.Repositories.ListContributors(ctx, owner, p.Name, &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err != nil {
		err = s.HandleRequestErrors(err)
		ch <- ProjectDetails{ProjectID: p.ID, Err: err}
		return err
	}

	details := ProjectDetails{
		ProjectID:    p.ID,
		Technologies: technologiesByUsage(languages),
		Contributors: len(contributors),
	}

	for _, c := range contributors {
		details.Commits += c.GetContributions()
	}

	// an empty repository has no contributor yet, count its owner
	if details.Contributors == 0 {
		details.Contributors = 1
	}

	ch <- details
	return nil
}

// technologiesByUsage orders languages by bytes of code, largest first
func technologiesByUsage(languages map[string]int) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})

	return names
}

// HandleRequestErrors manage errors including github rate limit errors at the same location
// If error is a rate limit error, the local rate limiter is drained to stay in sync with github
func (s githubService) HandleRequestErrors(err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if !s.githubRateLimiter.AllowN(time.Now(), s.githubRateLimiter.Burst()) {
			return model.ErrRateLimiter
		}

		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.ErrRateLimitReached
	}

	log.WithError(err).Error("error catched when fetching data from github")
	return fmt.Errorf("%w: %v", model.ErrFetch, err)
}
