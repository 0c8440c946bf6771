// Package title applies the default and empty-string policy to chart titles.
//
// Three inputs map to three different titles:
//
//	Normalize(nil)           == ""       // unset: the client generates "<x> vs. <y>"
//	Normalize(title.Of(""))  == " "      // explicitly blank: no generated title
//	Normalize(title.Of("T")) == "T"      // used as given
package title

import "fmt"

// Of returns a pointer to s, for passing an explicit title.
func Of(s string) *string { return &s }

// Normalize maps an optional title to the value sent to the rendering engine.
// For explicit titles the mapping is idempotent: Normalize(Of(Normalize(t)))
// equals Normalize(t). The unset case is not, since Of("") is a blank title.
func Normalize(t *string) string {
	switch {
	case t == nil:
		return ""
	case *t == "":
		return " "
	default:
		return *t
	}
}

// Display resolves the title a renderer shows for a normalized title.
// An empty title becomes "<xlabel> vs. <ylabel>".
func Display(normalized, xlabel, ylabel string) string {
	if normalized != "" {
		return normalized
	}
	return fmt.Sprintf("%s vs. %s", xlabel, ylabel)
}
