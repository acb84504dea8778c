package audit

import "fmt"

// Style selects how the audit instruction is split across chat messages.
type Style string

const (
	// StyleStrict sends the procedure as a system prompt and asks the
	// backend for JSON-mode output where the API supports it.
	StyleStrict Style = "strict"
	// StyleFreeform packs the whole instruction into a single user message.
	StyleFreeform Style = "freeform"
)

// DefaultStyleGuide is embedded in the prompt when the request carries no
// style override. Operators can replace it wholesale via style_guide_path.
const DefaultStyleGuide = `Tone: professional and concise. Keep the register of the source text.

Fixed terminology:
- "dashboard" stays "dashboard"
- "despliegue" is "deployment", never "deploy" as a noun
- "monitorización" is "monitoring", never "monitorization"

Prefer idiomatic phrasing in the target language over literal word-for-word
renderings whenever the meaning is fully preserved.`

// auditProcedure is the fixed instruction block sent with every audit. The
// model does the entire analysis; the server only parses and renders.
const auditProcedure = `You are a professional translation auditor. Audit the translation against its source text.

Procedure:
1. Split both texts into paragraphs on blank-line boundaries and pair them in order: first source paragraph with first translation paragraph, and so on.
2. For each pair, identify every translation issue: mistranslations, omissions, additions, terminology drift, awkward or unidiomatic phrasing.
3. Rewrite the translation paragraph so that every issue found is fixed.
4. Score each pair on three axes from 1 (worst) to 5 (best): Accuracy, Idiomaticity, Consistency, written as "A/I/C" (for example "5/4/5").
5. Tag each pair with the severity of its worst issue: "minor", "moderate" or "critical".`

// replySchema is the JSON shape the model is told to return.
const replySchema = `{
  "rows": [
    {
      "index": 1,
      "source": "first source paragraph",
      "translation": "first translation paragraph",
      "issues": "every issue found in this pair",
      "fix": "corrected translation paragraph",
      "score": "5/4/5",
      "severity": "minor|moderate|critical"
    }
  ],
  "summary": "overall assessment of the translation",
  "style_rules": ["style rule applied during this audit"]
}`

const jsonOnlyDirective = `Return ONLY a JSON object matching the schema above.
No markdown, no code fences, no prose before or after the JSON.`

// BuildPrompt assembles the audit instruction for one source/translation
// pair. style overrides DefaultStyleGuide entirely when non-empty. With
// StyleStrict the instruction travels as the system prompt and the texts as
// the user message; with StyleFreeform everything is one user message and
// system is empty.
func BuildPrompt(src, tgt, style string, mode Style) (system, user string) {
	guide := style
	if guide == "" {
		guide = DefaultStyleGuide
	}

	instruction := fmt.Sprintf("%s\n\nStyle guide:\n%s\n\nReply with a JSON object in exactly this shape:\n%s\n\n%s",
		auditProcedure, guide, replySchema, jsonOnlyDirective)

	texts := fmt.Sprintf("Source text:\n%s\n\nTranslation:\n%s", src, tgt)

	if mode == StyleStrict {
		return instruction, texts
	}
	return "", instruction + "\n\n" + texts
}
