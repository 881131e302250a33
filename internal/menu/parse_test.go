package menu

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1700000000, 0)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "upper case json fence", in: "```JSON\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  \n```json {\"a\":1} ```\n", want: `{"a":1}`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.in))
		})
	}
}

func TestParseResponseFillsDefaults(t *testing.T) {
	raw := `{"categories":[{"name":"Drinks","items":[{"originalName":"ビール","price":"500"}]}]}`

	result, err := ParseResponse(raw, fixedNow)
	require.NoError(t, err)
	require.Len(t, result.Categories, 1)
	require.Len(t, result.Categories[0].Items, 1)

	item := result.Categories[0].Items[0]
	assert.Equal(t, "ビール", item.OriginalName)
	assert.Equal(t, "ビール", item.TranslatedName)
	assert.Equal(t, "", item.Description)
	assert.True(t, decimal.NewFromInt(500).Equal(item.Price))
	assert.Equal(t, fmt.Sprintf("item-0-0-%d", fixedNow.UnixNano()), item.ID)
	assert.Equal(t, "", result.OrderingPhrase)
}

func TestParseResponseMissingFields(t *testing.T) {
	raw := "```json\n" + `{
		"orderingPhrase": " すみません、これを注文したいです ",
		"categories": [
			{"items": [
				{"translatedName": "Mystery dish", "price": "market price"},
				{"originalName": "唐揚げ", "translatedName": "Fried chicken", "description": "Crispy", "price": 680},
				{"originalName": "枝豆", "price": -5},
				{"originalName": "餃子", "price": null},
				{"originalName": 42, "price": 12.5}
			]},
			{"name": {"en": "Drinks"}, "items": [
				{"originalName": ["お茶"], "translatedName": {"en": "Tea"}, "description": {}, "price": 300}
			]}
		]
	}` + "\n```"

	result, err := ParseResponse(raw, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "すみません、これを注文したいです", result.OrderingPhrase)
	require.Len(t, result.Categories, 2)

	cat := result.Categories[0]
	assert.Equal(t, "General", cat.Name)
	require.Len(t, cat.Items, 5)

	assert.Equal(t, "Unknown", cat.Items[0].OriginalName)
	assert.Equal(t, "Mystery dish", cat.Items[0].TranslatedName)
	assert.True(t, cat.Items[0].Price.IsZero())

	assert.Equal(t, "Fried chicken", cat.Items[1].TranslatedName)
	assert.Equal(t, "Crispy", cat.Items[1].Description)
	assert.True(t, decimal.NewFromInt(680).Equal(cat.Items[1].Price))

	assert.True(t, cat.Items[2].Price.IsZero(), "negative price defaults to zero")
	assert.True(t, cat.Items[3].Price.IsZero(), "null price defaults to zero")

	assert.Equal(t, "42", cat.Items[4].OriginalName)
	assert.True(t, decimal.RequireFromString("12.5").Equal(cat.Items[4].Price))

	drinks := result.Categories[1]
	assert.Equal(t, "General", drinks.Name, "object name falls back to the default")
	require.Len(t, drinks.Items, 1)
	assert.Equal(t, "Unknown", drinks.Items[0].OriginalName)
	assert.Equal(t, "Unknown", drinks.Items[0].TranslatedName)
	assert.Empty(t, drinks.Items[0].Description)
	assert.True(t, decimal.NewFromInt(300).Equal(drinks.Items[0].Price))
}

func TestParseResponseKeepsOrderAndDuplicateNames(t *testing.T) {
	raw := `{"categories":[
		{"name":"Drinks","items":[{"originalName":"A"},{"originalName":"B"}]},
		{"name":"Food","items":[]},
		{"name":"Drinks","items":[{"originalName":"C"}]}
	]}`

	result, err := ParseResponse(raw, fixedNow)
	require.NoError(t, err)
	require.Len(t, result.Categories, 3)
	assert.Equal(t, []string{"Drinks", "Food", "Drinks"}, []string{
		result.Categories[0].Name, result.Categories[1].Name, result.Categories[2].Name,
	})
	assert.Equal(t, "A", result.Categories[0].Items[0].OriginalName)
	assert.Equal(t, "B", result.Categories[0].Items[1].OriginalName)
	assert.Empty(t, result.Categories[1].Items)
	assert.Equal(t, "C", result.Categories[2].Items[0].OriginalName)
	assert.NotEqual(t, result.Categories[0].Items[0].ID, result.Categories[2].Items[0].ID)
}

func TestParseResponseEmptyCategories(t *testing.T) {
	result, err := ParseResponse(`{"orderingPhrase":"x","categories":[]}`, fixedNow)
	require.NoError(t, err)
	assert.True(t, result.Empty())

	result, err = ParseResponse(`{}`, fixedNow)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestParseResponseErrors(t *testing.T) {
	_, err := ParseResponse("", fixedNow)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = ParseResponse("```json\n```", fixedNow)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = ParseResponse("Here is the menu: Beer 500", fixedNow)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = ParseResponse(`{"categories":"Beer 500"}`, fixedNow)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestParseResponseNormalisesToNFC(t *testing.T) {
	// JSON escapes spell "é" as e + combining acute accent.
	result, err := ParseResponse(`{"categories":[{"name":"Entre\u0301es","items":[{"originalName":"Cafe\u0301"}]}]}`, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Entr\u00e9es", result.Categories[0].Name)
	assert.Equal(t, "Caf\u00e9", result.Categories[0].Items[0].OriginalName)
}

// TestParseResponseShapeAndUniqueIDs verifies that N categories with Mi items
// come back as N categories with Mi items each and pairwise distinct ids.
func TestParseResponseShapeAndUniqueIDs(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("shape preserved and ids unique", prop.ForAll(
		func(counts []int) bool {
			var b strings.Builder
			b.WriteString(`{"categories":[`)
			for ci, n := range counts {
				if ci > 0 {
					b.WriteString(",")
				}
				fmt.Fprintf(&b, `{"name":"c%d","items":[`, ci)
				for ii := 0; ii < n; ii++ {
					if ii > 0 {
						b.WriteString(",")
					}
					fmt.Fprintf(&b, `{"originalName":"i%d-%d","price":%d}`, ci, ii, ii)
				}
				b.WriteString("]}")
			}
			b.WriteString("]}")

			result, err := ParseResponse(b.String(), fixedNow)
			if err != nil || len(result.Categories) != len(counts) {
				return false
			}
			seen := make(map[string]bool)
			for ci, cat := range result.Categories {
				if len(cat.Items) != counts[ci] {
					return false
				}
				for ii, item := range cat.Items {
					if item.OriginalName != fmt.Sprintf("i%d-%d", ci, ii) || seen[item.ID] {
						return false
					}
					seen[item.ID] = true
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 12)),
	))

	properties.TestingRun(t)
}
