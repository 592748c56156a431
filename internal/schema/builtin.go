package schema

import "slices"

// DefaultAttachmentSubfolder receives attached files unless another subfolder is chosen.
const DefaultAttachmentSubfolder = "0. EDITAL_ANEXOS"

// BidSubfolders is the fixed skeleton of every bid folder.
//
//nolint:gochecknoglobals // fixed domain data
var BidSubfolders = []string{
	"0. EDITAL_ANEXOS",
	"1. HABILITACAO/1. HAB_JURIDICA",
	"1. HABILITACAO/2. HAB_FISCAL",
	"1. HABILITACAO/3. HAB_ECON_FINAN",
	"1. HABILITACAO/4. QUALIFICACAO_TECNICA",
	"1. HABILITACAO/5. ACT_CAT",
	"1. HABILITACAO/6. DECLARACOES",
	"2. PROPOSTA",
	"3. EDITAVEIS/1. DECLARACAO",
	"3. EDITAVEIS/2. PROPOSTA",
	"3. EDITAVEIS/3. PLANILHA",
}

// PreselectedSubfolders are the bid subfolders whose template documents are
// copied when the user does not choose.
//
//nolint:gochecknoglobals // fixed domain data
var PreselectedSubfolders = []string{
	"1. HABILITACAO/1. HAB_JURIDICA",
	"1. HABILITACAO/3. HAB_ECON_FINAN",
	"1. HABILITACAO/4. QUALIFICACAO_TECNICA",
	"3. EDITAVEIS/1. DECLARACAO",
	"3. EDITAVEIS/2. PROPOSTA",
	"3. EDITAVEIS/3. PLANILHA",
}

// IsBidSubfolder reports whether rel is one of BidSubfolders.
func IsBidSubfolder(rel string) bool {
	return slices.Contains(BidSubfolders, rel)
}

// ClientStructure returns the folder tree of a client's procurement workspace.
// A fresh value is returned on every call.
func ClientStructure() FolderSchema {
	return FolderSchema{
		Dir("00. Editais_ANALISAR"),
		Dir("01. Licitacao",
			Dir("01. Participar", Leaves(Months()...)...),
			Dir("02. Vencedora"),
			Dir("03. Declinada"),
			Dir("04. Suspensa"),
			Dir("05. Modelos_Padrao", Leaves("DECLARACAO", "PROPOSTA", "PLANILHA")...),
		),
		Dir("02. Empresa", Leaves(
			"01. CNPJ",
			"02. Socios",
			"03. Alvara",
			"04. Dados_Bancarios",
			"05. Contrato_Social",
			"06. Balanco_Patrimonial",
			"07. Certidoes",
			"08. Acessos",
			"09. CAF_Digital_BA",
			"10. SICAF",
			"11. Compras_Salvador",
			"12. Encargos_Tributacao",
			"13. SMS",
			"14. Compras_FIEB",
			"15. Impostos",
			"16. Juridico",
			"17. Financeiro",
			"18. Antecipa_EMBASA",
			"19. Inscricao_Estadual",
			"20. Inscricao_Municipal",
		)...),
		Dir("03. Qualificacao_Tecnica", Leaves(
			"01. RT",
			"02. ACT",
			"03. CAT",
			"04. CAO",
			"05. CREA_PJ",
			"06. CREA_PF",
			"07. ART_CONTRATOS",
		)...),
		Dir("04. Orcamentos_Propostas"),
		Dir("05. Planejamento_Gestao"),
		Dir("06. Biblioteca",
			Dir("01. Logo_Marca"),
			Dir("02. Carimbos"),
			Dir("03. Assinatura"),
			Dir("04. Modelos_Administrativos", Leaves(
				"01. Recurso",
				"02. Contrarrazao",
				"03. Impugnacao",
				"04. Esclarecimento",
			)...),
		),
	}
}
