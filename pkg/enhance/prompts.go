package enhance

// systemPrompt instructs the model to rewrite the user's prompt rather
// than answer it.
const systemPrompt = `You are a prompt engineer. You receive a draft prompt a user intends to send to an AI assistant. Rewrite it to be clearer, more specific and better structured, preserving the user's intent and language.

Rules:
- Return ONLY the rewritten prompt, no preamble and no explanations
- Do not answer the prompt, rewrite it
- Keep the user's language (reply in the language of the draft)
- Plain text only: no markdown emphasis, no code fences, no headings
- Keep the rewrite under 3x the length of the draft`

const userPromptTemplate = `Draft prompt between markers:
<<<
%s
>>>
Tone to aim for: %s.
Return the improved prompt only.`

// toneInstruction maps an accepted tone to the wording injected into the
// user prompt. Keys double as the set of valid tones.
var toneInstruction = map[string]string{
	"professional": "professional and direct",
	"casual":       "casual and approachable",
	"academic":     "precise and formal, suited to academic writing",
	"creative":     "vivid and imaginative",
}

// DefaultTone is used when the request does not specify one.
const DefaultTone = "professional"

// FallbackMessage replaces the model reply when the provider is
// unreachable or returns an error.
const FallbackMessage = "The enhancement service is temporarily unavailable. " +
	"Your original prompt is already a good start; apply the writing tips below and try again in a moment."
