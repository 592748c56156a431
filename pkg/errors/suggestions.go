package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryDiskSpace:
		return g.generateDiskSpaceSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryInvalidName:
		return g.generateInvalidNameSuggestions(affectedPath)
	case CategoryCopy:
		return g.generateCopySuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateCopySuggestions(_ string) []string {
	return []string{
		"Verifique se há espaço livre no destino",
		"Confirme que o arquivo de origem não está aberto em outro programa",
		"Tente novamente: pode ser uma falha momentânea de rede ou disco",
	}
}

func (g *suggestionGenerator) generateDiskSpaceSuggestions(path string) []string {
	suggestions := []string{
		"Libere espaço no disco de destino",
		"Mova arquivos antigos de licitações encerradas para outro local",
	}

	if path != "" {
		suggestions = append(suggestions, "Verifique o espaço disponível na unidade de "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generateInvalidNameSuggestions(path string) []string {
	suggestions := []string{
		`Remova caracteres inválidos do nome (< > : " | ? *)`,
		"Encurte nomes de pastas muito longos",
	}

	if path != "" {
		suggestions = append(suggestions, "Revise o nome: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"Confirme que o caminho existe e está escrito corretamente",
	}

	if path != "" {
		suggestions = append(suggestions, "Verifique o caminho: "+path)
		suggestions = append(suggestions, "Verifique se já existe um arquivo com o nome de uma pasta em "+path)
	} else {
		suggestions = append(suggestions, "Confirme que as pastas superiores existem")
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Confirme que você tem permissão de leitura e escrita nas pastas",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Verifique as permissões de %s", path))
	} else {
		suggestions = append(suggestions, "Verifique as permissões da pasta afetada")
	}

	suggestions = append(suggestions, "Feche arquivos abertos no Word/Excel antes de substituí-los")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(path string) []string {
	suggestions := []string{
		"Leia a mensagem de erro para mais detalhes",
		"Verifique permissões e espaço em disco",
	}

	if path != "" {
		suggestions = append(suggestions, "Confirme que o caminho está acessível: "+path)
	}

	return suggestions
}
