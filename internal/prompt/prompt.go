// Package prompt composes the single analysis prompt sent to the model.
package prompt

const preamble = `You are a senior engineer reviewing an unfamiliar repository.
Below is a bounded snapshot of its tree: a subset of files, each possibly
truncated. Using only this snapshot, write an analysis report covering:

1. What the project appears to be and how it is organized.
2. The key components and how they fit together.
3. Code quality observations, risks, and anything surprising.
4. Concrete first steps for a new contributor.

Be specific; cite file paths from the snapshot when making a point.`

// Build composes the full prompt: the fixed preamble, an optional focus
// supplied by the user, and the snapshot embedded verbatim. Pure function,
// no I/O.
func Build(summary, focus string) string {
	p := preamble
	if focus != "" {
		p += "\n\nFocus the analysis on: " + focus
	}
	return p + "\n\n" + summary
}
