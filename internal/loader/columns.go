package loader

import (
	"strings"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/textnorm"
)

// Canonical column names.
const (
	colID          = "id"
	colTopic       = "topic"
	colPrompt      = "prompt"
	colCorrect     = "correct"
	colExplanation = "explanation"
	colDifficulty  = "difficulty"
	colTags        = "tags"
	colImage1      = "image1"
	colImage2      = "image2"
)

func optionColumn(letter string) string {
	return "option_" + strings.ToLower(letter)
}

// requiredColumns is also the order in which missing columns are reported.
var requiredColumns = []string{
	colID, colTopic, colPrompt,
	optionColumn("A"), optionColumn("B"), optionColumn("C"), optionColumn("D"), optionColumn("E"),
	colCorrect, colExplanation, colDifficulty, colTags,
}

var columnAliases = buildAliases()

func buildAliases() map[string]string {
	aliases := map[string]string{
		"id":            colID,
		"topic":         colTopic,
		"tema":          colTopic,
		"topico":        colTopic,
		"assunto":       colTopic,
		"prompt":        colPrompt,
		"enunciado":     colPrompt,
		"pergunta":      colPrompt,
		"question":      colPrompt,
		"questao":       colPrompt,
		"correct":       colCorrect,
		"correta":       colCorrect,
		"gabarito":      colCorrect,
		"resposta":      colCorrect,
		"answer":        colCorrect,
		"explanation":   colExplanation,
		"justificativa": colExplanation,
		"comentario":    colExplanation,
		"difficulty":    colDifficulty,
		"dificuldade":   colDifficulty,
		"nivel":         colDifficulty,
		"level":         colDifficulty,
		"tags":          colTags,
		"image1":        colImage1,
		"imagem1":       colImage1,
		"image_1":       colImage1,
		"imagem_1":      colImage1,
		"image2":        colImage2,
		"imagem2":       colImage2,
		"image_2":       colImage2,
		"imagem_2":      colImage2,
	}
	for _, letter := range questionbank.OptionLetters {
		l := strings.ToLower(letter)
		canonical := optionColumn(letter)
		aliases[l] = canonical
		aliases["option_"+l] = canonical
		aliases["alternativa_"+l] = canonical
		aliases["opcao_"+l] = canonical
	}
	return aliases
}

var separatorReplacer = strings.NewReplacer(" ", "_", "-", "_")

// normalizeHeader folds a raw header cell: trimmed, lowercase, no diacritics.
func normalizeHeader(h string) string {
	return textnorm.Fold(strings.TrimPrefix(h, "\ufeff"))
}

// isIndexColumn reports columns written by dataframe exports as row indexes.
func isIndexColumn(normalized string) bool {
	return normalized == "" || strings.HasPrefix(normalized, "unnamed")
}

func canonicalColumn(normalized string) (string, bool) {
	if c, ok := columnAliases[normalized]; ok {
		return c, true
	}
	if c, ok := columnAliases[separatorReplacer.Replace(normalized)]; ok {
		return c, true
	}
	// "explicacao", "explicacao/justificativa", "explicacao (comentario)", ...
	if strings.HasPrefix(normalized, "explicacao") {
		return colExplanation, true
	}
	return "", false
}

// resolveColumns maps canonical names to header positions. Index columns and
// unknown names are ignored; the first column wins on duplicates.
func resolveColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		normalized := normalizeHeader(h)
		if isIndexColumn(normalized) {
			continue
		}
		canonical, ok := canonicalColumn(normalized)
		if !ok {
			continue
		}
		if _, exists := cols[canonical]; !exists {
			cols[canonical] = i
		}
	}
	return cols
}

func missingColumns(cols map[string]int) []string {
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
