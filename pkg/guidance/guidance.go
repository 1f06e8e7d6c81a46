package guidance

import "strings"

// Fixed writing-guidance dictionary. The assembled block is appended to
// every enhancement result, so it must stay deterministic.

var powerVerbs = []string{
	"analyze", "build", "compare", "critique", "design",
	"draft", "evaluate", "explain", "outline", "summarize",
}

var precisionQualifiers = []string{
	"specific", "measurable", "step-by-step", "concise", "audience-aware",
}

var transitionPhrases = []string{
	"first", "then", "after that", "finally", "in contrast",
}

var structureCues = []string{
	"state the goal up front",
	"give the model a role to play",
	"list constraints explicitly",
	"describe the desired output format",
	"include one concrete example",
}

const blockHeading = "--- Writing tips ---"

// Block assembles the static guidance text appended to every enhanced
// prompt. The output is identical on every call.
func Block() string {
	var b strings.Builder
	b.WriteString(blockHeading)
	b.WriteString("\n")
	b.WriteString("Strong verbs to anchor your request: ")
	b.WriteString(strings.Join(powerVerbs, ", "))
	b.WriteString(".\n")
	b.WriteString("Qualities of an effective prompt: ")
	b.WriteString(strings.Join(precisionQualifiers, ", "))
	b.WriteString(".\n")
	b.WriteString("Useful transitions for multi-step asks: ")
	b.WriteString(strings.Join(transitionPhrases, ", "))
	b.WriteString(".\n")
	b.WriteString("Structure checklist:\n")
	for _, cue := range structureCues {
		b.WriteString("- ")
		b.WriteString(cue)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Append joins enhanced text and the guidance block with a blank line.
func Append(enhanced string) string {
	enhanced = strings.TrimRight(enhanced, "\n")
	if enhanced == "" {
		return Block()
	}
	return enhanced + "\n\n" + Block()
}
