package llm

import "fmt"

// The explanation prompt pins the model to the labeled-section layout the
// response parser knows how to split. Drift is tolerated downstream, but the
// labels here and the parser's label table must stay in sync.
func explainPrompt(word string) string {
	return fmt.Sprintf(`Provide a comprehensive explanation of the English word "%s" using EXACTLY this format:

**IPA Pronunciation:** /pronunciation here/

**Part of Speech:** (noun/verb/adjective/etc.)

**Simple Definition:** Brief, clear definition

**Advanced Definition:** More detailed, nuanced definition

**Example Sentences:**

1. First example sentence with the word in context.
2. Second example sentence showing different usage.
3. Third example sentence demonstrating another context.

**Common Collocations and Fixed Expressions:**

* **Expression 1:** Explanation of usage
* **Expression 2:** Explanation of usage

**Synonyms & Antonyms:**

* **Synonyms:** each with a brief note on how it differs
* **Antonyms:** each with a brief note

**Commonly Confused Words:**

* **Word:** how it differs from "%s" and when to use each

**Word Family:**

* **Noun:** related noun forms
* **Verb:** related verb forms
* **Adjective:** related adjective forms

**Vietnamese Translation:**

Primary translation and nuanced explanations of usage differences.

Please follow this EXACT format for consistency and include ALL sections.`, word, word)
}

// The monologue prompt produces the fixed three-marker layout that
// parser.ParseMonologue extracts.
func monologuePrompt(word string) string {
	return fmt.Sprintf(`Write a short monologue by one person that uses the word '%s' multiple times.
The monologue should clearly show the meaning, usage, and context of the word in everyday situations.
Do not shorten, truncate, or add ellipses ("...") in the monologue. Write full sentences and paragraphs.

Structure your response as follows:

**Monologue:**
[A natural, conversational monologue (2-3 minutes when spoken) that uses '%s' at least 4-5 times in different contexts.]

**Explanation:**
[Brief explanation of how '%s' is used in the monologue, including common collocations and context clues.]

**Pronunciation:**
/%s/ (IPA notation)

Make sure the monologue flows naturally and provides rich context for English learners to understand the word through listening.`,
		word, word, word, word)
}
