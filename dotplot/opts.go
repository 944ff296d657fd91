package dotplot

// Opts configures dot-plot rendering.  Styling is passed in explicitly; there
// is no package-level theme state.
type Opts struct {
	// Title is drawn above the plot.
	Title string
	// Width and Height are CSS sizes for the rendered chart.
	Width  string
	Height string
	// ForwardColor and ReverseColor style the two strand groups.
	ForwardColor string
	ReverseColor string
}

// DefaultOpts is the default rendering configuration.
var DefaultOpts = Opts{
	Title:        "Dot plot",
	Width:        "400px",
	Height:       "400px",
	ForwardColor: "black",
	ReverseColor: "red",
}
