// Package catalog holds the transparency questionnaire: the common
// criteria matrix applied to every public entity plus the additional
// matrices keyed by entity type, and the mapping from each criterion to
// the content checks it requires.
package catalog

import "github.com/sapt/auditor/internal/models"

// base is the common matrix applied to every entity regardless of type.
var base = []models.Criterion{
	{ID: "1.1", Question: "Possui sítio oficial próprio na internet?", Dimension: "Informações Prioritárias", LegalBasis: "Art. 48, §1º, II, da LC nº 101/00 e arts. 3º, III, 6º, I, e 8º, §2º, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassEssential},
	{ID: "1.2", Question: "Possui portal da transparência próprio ou compartilhado na internet?", Dimension: "Informações Prioritárias", LegalBasis: "Art. 48, §1º, II, da LC nº 101/00 e arts. 3º, III, 6º, I, e 8º, §2º, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassEssential},
	{ID: "1.3", Question: "O acesso ao portal transparência está visível na capa do site?", Dimension: "Informações Prioritárias", LegalBasis: "Art. 8º, caput, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
	{ID: "1.4", Question: "O site e o portal de transparência contêm ferramenta de pesquisa de conteúdo que permita o acesso à informação?", Dimension: "Informações Prioritárias", LegalBasis: "Art. 8º, § 3º, I, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
	{ID: "2.1", Question: "Disponibiliza a estrutura organizacional, competências, legislação aplicável, principais cargos e seus ocupantes, endereço e telefones das unidades, horários de atendimento ao público?", Dimension: "Informações Institucionais", LegalBasis: "Art. 8º, §1º, I da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "2.2", Question: "Disponibiliza dados para contato como endereço físico, telefone e horário de funcionamento?", Dimension: "Informações Institucionais", LegalBasis: "Art. 8º, § 1º, I, da Lei nº 12.527/2011 - LAI e art. 6º, VI, b, da Lei 13.460/2017.", Classification: models.ClassMandatory},
	{ID: "2.3", Question: "Divulga sua estrutura organizacional e competências?", Dimension: "Informações Institucionais", LegalBasis: "Art. 8º, §1º, I da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "2.4", Question: "Informa quais são os principais cargos e seus ocupantes (agenda de autoridades)?", Dimension: "Informações Institucionais", LegalBasis: "Art. 8º, §1º, I da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "2.5", Question: "Disponibiliza o inteiro teor de leis, decretos, portarias, resoluções ou outros atos normativos?", Dimension: "Informações Institucionais", LegalBasis: "Art. 8º, §1º, I da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "2.6", Question: "Divulga a agenda das autoridades?", Dimension: "Informações Institucionais", LegalBasis: "Art. 8º, §1º, I da Lei nº 12.527/2011", Classification: models.ClassRecommended},
	{ID: "2.7", Question: "Divulga lista da legislação aplicável?", Dimension: "Informações Institucionais", LegalBasis: "Art. 8º, §1º, I da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "2.8", Question: "Divulga planejamento estratégico?", Dimension: "Informações Institucionais", LegalBasis: "Art. 7º, VII, a, da Lei nº 12.527/2011", Classification: models.ClassRecommended},
	{ID: "2.9", Question: "Divulga a remuneração e subsídio recebidos por ocupante de cargo, posto, graduação, função e emprego público, incluindo auxílios, ajudas de custo, jetons e quaisquer outras vantagens pecuniárias, bem como proventos de aposentadoria e pensões daqueles que estiverem na ativa, de maneira individualizada?", Dimension: "Informações Institucionais", LegalBasis: "Art. 7º, §3º, VI da Lei nº 12.527/2011, Art. 7º, VI do Decreto nº 7.724/2012", Classification: models.ClassEssential},
	{ID: "3.1", Question: "Divulga informações sobre a receita pública?", Dimension: "Receitas", LegalBasis: "Art. 48-A, II, da LC nº 101/2000", Classification: models.ClassEssential},
	{ID: "3.2", Question: "As informações sobre receitas estão disponibilizadas em tempo real (dia útil seguinte)?", Dimension: "Receitas", LegalBasis: "Art. 48-A, II, da LC nº 101/2000 e Art. 2º, §2º, II, do Decreto nº 7.185/2010", Classification: models.ClassEssential},
	{ID: "4.1", Question: "Divulga informações sobre a despesa pública?", Dimension: "Despesas", LegalBasis: "Art. 48-A, I, da LC nº 101/2000", Classification: models.ClassEssential},
	{ID: "4.2", Question: "As informações sobre despesas estão disponibilizadas em tempo real (dia útil seguinte)?", Dimension: "Despesas", LegalBasis: "Art. 48-A, I, da LC nº 101/2000 e Art. 2º, §2º, II, do Decreto nº 7.185/2010", Classification: models.ClassEssential},
	{ID: "5.1", Question: "Divulga informações sobre repasses ou transferências de recursos financeiros?", Dimension: "Convênios e Transferências", LegalBasis: "Art. 8º, §1º, II da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "5.2", Question: "Divulga informações sobre os convênios celebrados?", Dimension: "Convênios e Transferências", LegalBasis: "Art. 8º, §1º, II da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "5.3", Question: "Divulga informações sobre os termos de parceria celebrados?", Dimension: "Convênios e Transferências", LegalBasis: "Art. 8º, §1º, II da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "6.1", Question: "Divulga informações sobre concursos públicos?", Dimension: "Recursos Humanos", LegalBasis: "Art. 7º, V e VI da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "6.2", Question: "Divulga a relação dos servidores públicos?", Dimension: "Recursos Humanos", LegalBasis: "Art. 7º, V e VI da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "6.3", Question: "Divulga informações sobre os servidores terceirizados?", Dimension: "Recursos Humanos", LegalBasis: "Art. 7º, V e VI da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "6.4", Question: "Divulga informações sobre os estagiários?", Dimension: "Recursos Humanos", LegalBasis: "Art. 7º, V e VI da Lei nº 12.527/2011", Classification: models.ClassRecommended},
	{ID: "6.5", Question: "Divulga informações sobre cargos e salários dos servidores?", Dimension: "Recursos Humanos", LegalBasis: "Art. 7º, V e VI da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "6.6", Question: "Divulga informações sobre servidores cedidos e recebidos?", Dimension: "Recursos Humanos", LegalBasis: "Art. 7º, V e VI da Lei nº 12.527/2011", Classification: models.ClassRecommended},
	{ID: "7.1", Question: "Divulga informações sobre diárias?", Dimension: "Diárias", LegalBasis: "Art. 8º, §1º, II da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "7.2", Question: "Divulga informações sobre passagens?", Dimension: "Diárias", LegalBasis: "Art. 8º, §1º, II da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "8.1", Question: "Divulga informações sobre as licitações realizadas e em andamento, com editais, anexos e resultados?", Dimension: "Licitações", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "8.2", Question: "Divulga a relação de licitações abertas, em andamento e já realizadas?", Dimension: "Licitações", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "8.3", Question: "Divulga o conteúdo integral dos editais de licitação?", Dimension: "Licitações", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "8.4", Question: "Divulga o resultado das licitações?", Dimension: "Licitações", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "8.5", Question: "Divulga informações sobre dispensas e inexigibilidades?", Dimension: "Licitações", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "8.7", Question: "Divulga informações sobre impugnações, recursos e representações?", Dimension: "Licitações", LegalBasis: "Art. 7º, VII, a, da Lei nº 12.527/2011", Classification: models.ClassRecommended},
	{ID: "9.1", Question: "Divulga informações sobre os contratos celebrados?", Dimension: "Contratos", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "9.2", Question: "Divulga o conteúdo integral dos contratos?", Dimension: "Contratos", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "9.3", Question: "Divulga informações sobre os aditivos e apostilamentos dos contratos?", Dimension: "Contratos", LegalBasis: "Art. 8º, §1º, IV da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "10.2", Question: "Divulga informações sobre as obras em andamento?", Dimension: "Obras", LegalBasis: "Art. 8º, §1º, V da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "11.3", Question: "Divulga a prestação de contas (relatório de gestão) do ano anterior?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput da LC nº 101/2000", Classification: models.ClassMandatory},
	{ID: "11.5", Question: "Divulga Relatório Resumido da Execução Orçamentária (RREO) dos últimos 6 meses?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput da LC nº 101/2000", Classification: models.ClassEssential},
	{ID: "11.7", Question: "Divulga Relatório de Gestão Fiscal (RGF) dos últimos 6 meses?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput da LC nº 101/2000", Classification: models.ClassEssential},
	{ID: "12.1", Question: "Disponibiliza informações sobre o Serviço de Informação ao Cidadão (SIC) presencial?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 9º, I da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "12.2", Question: "Disponibiliza informações sobre o Serviço Eletrônico de Informação ao Cidadão (e-SIC)?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 10º, §2º da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "12.3", Question: "Disponibiliza o formulário para pedido de acesso à informação no site?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 10º, §2º da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "12.4", Question: "Possibilita o acompanhamento do pedido de acesso à informação?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 9º, I, b e Art. 10º, §2º da Lei nº 12.527/2011", Classification: models.ClassEssential},
	{ID: "12.5", Question: "Divulga os relatórios estatísticos de atendimento à Lei de Acesso à Informação?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 30, III da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "12.6", Question: "Divulga informações sobre a autoridade responsável pelo monitoramento da implementação da Lei de Acesso à Informação?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 40, Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "12.7", Question: "Divulga respostas às perguntas mais frequentes da sociedade?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 8º, §1º, VI da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "12.8", Question: "Divulga o rol das informações que tenham sido desclassificadas nos últimos 12 (doze) meses?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 30, I da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "12.9", Question: "Divulga o rol de documentos classificados em cada grau de sigilo, com identificação para referência futura?", Dimension: "Serviço de Informação ao Cidadão - SIC", LegalBasis: "Art. 30, II da Lei nº 12.527/2011", Classification: models.ClassMandatory},
	{ID: "13.1", Question: "Disponibiliza o conteúdo acessível para pessoas com deficiência?", Dimension: "Acessibilidade", LegalBasis: "Art. 8º, §3º, VIII da Lei nº 12.527/2011 e Art. 63, Lei nº 13.146/2015", Classification: models.ClassEssential},
	{ID: "13.2", Question: "Disponibiliza recursos de acessibilidade (como: alto contraste, atalhos de teclado, barra de acessibilidade, mapa do site, etc)?", Dimension: "Acessibilidade", LegalBasis: "Art. 8º, §3º, VIII da Lei nº 12.527/2011 e Art. 63, Lei nº 13.146/2015", Classification: models.ClassEssential},
	{ID: "13.3", Question: "Disponibiliza símbolo de acessibilidade em destaque?", Dimension: "Acessibilidade", LegalBasis: "Art. 8º, §3º, VIII da Lei nº 12.527/2011 e Art. 63, Lei nº 13.146/2015", Classification: models.ClassEssential},
	{ID: "13.4", Question: "Disponibiliza intérprete da Língua Brasileira de Sinais (Libras)?", Dimension: "Acessibilidade", LegalBasis: "Art. 8º, §3º, VIII da Lei nº 12.527/2011 e Art. 63, Lei nº 13.146/2015", Classification: models.ClassEssential},
	{ID: "13.5", Question: "Disponibiliza VLibras?", Dimension: "Acessibilidade", LegalBasis: "Art. 8º, §3º, VIII da Lei nº 12.527/2011 e Art. 63, Lei nº 13.146/2015", Classification: models.ClassEssential},
	{ID: "14.1", Question: "Disponibiliza ouvidoria ou fale conosco?", Dimension: "Ouvidorias", LegalBasis: "Art. 37, §3º, I, CF e Lei nº 13.460/2017", Classification: models.ClassMandatory},
	{ID: "14.2", Question: "Disponibiliza informações sobre o tratamento dado às manifestações registradas na ouvidoria?", Dimension: "Ouvidorias", LegalBasis: "Art. 37, §3º, I, CF e Lei nº 13.460/2017", Classification: models.ClassMandatory},
	{ID: "14.3", Question: "Disponibiliza relatórios estatísticos de atendimento?", Dimension: "Ouvidorias", LegalBasis: "Art. 37, §3º, I, CF e Lei nº 13.460/2017", Classification: models.ClassMandatory},
	{ID: "15.1", Question: "Divulga informações sobre a política de privacidade e os termos de uso?", Dimension: "Lei Geral de Proteção de Dados (LGPD) e Governo Digital", LegalBasis: "Art. 6º, Lei nº 13.709/2018 (LGPD)", Classification: models.ClassMandatory},
	{ID: "15.2", Question: "Divulga informações sobre o encarregado pelo tratamento de dados pessoais?", Dimension: "Lei Geral de Proteção de Dados (LGPD) e Governo Digital", LegalBasis: "Art. 41, §1º, Lei nº 13.709/2018 (LGPD)", Classification: models.ClassMandatory},
	{ID: "15.3", Question: "Divulga informações sobre o uso de cookies?", Dimension: "Lei Geral de Proteção de Dados (LGPD) e Governo Digital", LegalBasis: "Art. 6º, Lei nº 13.709/2018 (LGPD)", Classification: models.ClassMandatory},
	{ID: "15.4", Question: "Divulga informações sobre o tratamento de dados pessoais?", Dimension: "Lei Geral de Proteção de Dados (LGPD) e Governo Digital", LegalBasis: "Art. 6º, Lei nº 13.709/2018 (LGPD)", Classification: models.ClassMandatory},
	{ID: "15.5", Question: "Divulga informações sobre o acesso e a possibilidade de correção de dados pessoais?", Dimension: "Lei Geral de Proteção de Dados (LGPD) e Governo Digital", LegalBasis: "Art. 18, Lei nº 13.709/2018 (LGPD)", Classification: models.ClassMandatory},
	{ID: "15.6", Question: "Divulga informações sobre a possibilidade de disponibilização de serviços digitais?", Dimension: "Lei Geral de Proteção de Dados (LGPD) e Governo Digital", LegalBasis: "Lei nº 14.129/2021 (Governo Digital)", Classification: models.ClassRecommended},
}

// Base returns the common questionnaire. Callers get a fresh slice and
// may reorder it freely.
func Base() []models.Criterion {
	out := make([]models.Criterion, len(base))
	copy(out, base)
	return out
}

// ByID looks a criterion up in the common matrix.
func ByID(id string) (models.Criterion, bool) {
	for _, c := range base {
		if c.ID == id {
			return c, true
		}
	}
	return models.Criterion{}, false
}
