package view

// Animation describes a one-shot entrance transition handed to GSAP
type Animation struct {
	Name     string  `json:"name"`
	Selector string  `json:"selector"`
	Y        int     `json:"y"`
	X        int     `json:"x,omitempty"`
	Opacity  float64 `json:"opacity"`
	Scale    float64 `json:"scale,omitempty"`
	Duration float64 `json:"duration"` // seconds
	Stagger  float64 `json:"stagger"`  // seconds between elements
	Ease     string  `json:"ease"`
}

// ProjectEntrance fades the project cards in from below
var ProjectEntrance = Animation{
	Name:     "project-entrance",
	Selector: ".project-card",
	Y:        30,
	Opacity:  0,
	Duration: 0.6,
	Stagger:  0.2,
	Ease:     "power2.out",
}

// Showcase lists the presets displayed on the animations page
func Showcase() []Animation {
	return []Animation{
		ProjectEntrance,
		{Name: "slide-in", Selector: ".showcase-slide", X: -60, Opacity: 0, Duration: 0.8, Stagger: 0.15, Ease: "power3.out"},
		{Name: "pop", Selector: ".showcase-pop", Opacity: 0, Scale: 0.6, Duration: 0.5, Stagger: 0.1, Ease: "back.out(1.7)"},
		{Name: "rise", Selector: ".showcase-rise", Y: 80, Opacity: 0, Duration: 1.2, Stagger: 0.25, Ease: "elastic.out(1, 0.5)"},
	}
}
