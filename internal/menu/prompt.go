package menu

import "fmt"

// Prompt builds the instruction sent alongside the menu images.
func Prompt(targetLanguage string) string {
	return fmt.Sprintf(`Analyze these menu images.
1. Identify the language of the menu (e.g., Japanese, Italian).
2. Create a polite "ordering phrase" in THAT identified language meaning "Excuse me, I would like to order this" (e.g., if Japanese, return "すみません、これを注文したいです").
3. Extract all food/drink items. Group them into logical categories.
4. Translate item names and descriptions into %s.

Return JSON only, no markdown, matching this shape:
%s`, targetLanguage, ResponseShape)
}

// ResponseShape documents the expected JSON for backends without native
// schema support.
const ResponseShape = `{
  "orderingPhrase": "string, the ordering phrase in the menu's original language",
  "categories": [
    {
      "name": "string, category name in the target language",
      "items": [
        {
          "originalName": "string, as printed on the menu",
          "translatedName": "string, in the target language",
          "description": "string, short description in the target language",
          "price": 0
        }
      ]
    }
  ]
}`
