package seed

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Content generation constants.
const (
	minParagraphs   = 1
	maxExtraPara    = 3 // 1-3 paragraphs total
	minSentences    = 2
	maxExtraSent    = 4 // 2-5 sentences total
	minWords        = 6
	maxExtraWords   = 10 // 6-15 words total
	minMaterials    = 2
	maxExtraMat     = 5   // 2-6 materials total
	emphasisChance  = 0.3 // chance a paragraph gets a bold lead-in
	optionalChance  = 0.8 // chance an optional course field is set
	minHours        = 1
	maxExtraHours   = 24
)

var tools = []string{
	"Hammer", "Wood glue", "Miter saw", "Drill", "Sandpaper",
	"Measuring tape", "Clamps", "Safety glasses", "Screwdriver set",
	"Paint brush", "Chisel", "Level", "Wood screws", "Laptop", "Notebook",
}

// generateDescription creates a random markdown description.
func generateDescription(faker *gofakeit.Faker) string {
	numParagraphs := minParagraphs + faker.IntN(maxExtraPara)
	paragraphs := make([]string, numParagraphs)
	for i := range numParagraphs {
		paragraphs[i] = generateParagraph(faker)
	}
	return strings.Join(paragraphs, "\n\n")
}

func generateParagraph(faker *gofakeit.Faker) string {
	numSentences := minSentences + faker.IntN(maxExtraSent)
	sentences := make([]string, numSentences)
	for i := range numSentences {
		sentences[i] = faker.Sentence(minWords + faker.IntN(maxExtraWords))
	}
	if faker.Float64() < emphasisChance {
		sentences[0] = "**" + strings.TrimSuffix(sentences[0], ".") + ".**"
	}
	return strings.Join(sentences, " ")
}

// generateMaterials creates a markdown bullet list of course materials.
func generateMaterials(faker *gofakeit.Faker) string {
	num := minMaterials + faker.IntN(maxExtraMat)
	var builder strings.Builder
	for range num {
		builder.WriteString("* ")
		builder.WriteString(tools[faker.IntN(len(tools))])
		builder.WriteByte('\n')
	}
	return builder.String()
}

func generateEstimatedTime(faker *gofakeit.Faker) string {
	hours := minHours + faker.IntN(maxExtraHours)
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}

func generateTitle(faker *gofakeit.Faker) string {
	patterns := []func(*gofakeit.Faker) string{
		func(f *gofakeit.Faker) string { return fmt.Sprintf("Build a %s %s", titleCase(f.Adjective()), titleCase(f.Noun())) },
		func(f *gofakeit.Faker) string { return "Learn How to " + titleCase(f.Verb()) },
		func(f *gofakeit.Faker) string {
			return fmt.Sprintf("%s and %s", titleCase(f.Noun()), titleCase(f.Noun()))
		},
		func(f *gofakeit.Faker) string { return fmt.Sprintf("Introduction to %s", titleCase(f.Hobby())) },
	}
	return patterns[faker.IntN(len(patterns))](faker)
}

func titleCase(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
