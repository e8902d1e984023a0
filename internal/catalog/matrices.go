package catalog

import "github.com/sapt/auditor/internal/models"

// Matrix types mirror the entity taxonomy used by the evaluation
// questionnaires. "comum-exceto-*" matrices apply to several entity
// types at once and are kept under their original group names.
const (
	MatrixCommonExceptIndependentStateCos = "comum-exceto-estatais-independentes"
	MatrixCommonExceptStateCos            = "comum-exceto-estatais"
	MatrixExecutive                       = "executivo"
	MatrixExecutiveConsortia              = "executivo-consorcios"
	MatrixLegislative                     = "legislativo"
	MatrixJudiciary                       = "judiciario"
	MatrixCourtOfAccounts                 = "tribunal-contas"
	MatrixProsecution                     = "ministerio-publico"
	MatrixPublicDefender                  = "defensoria"
	MatrixConsortia                       = "consorcios"
	MatrixStateCompanies                  = "estatais"
	MatrixIndependentStateCompanies       = "estatais-independentes"
)

var matrices = map[string][]models.Criterion{
	MatrixCommonExceptIndependentStateCos: {
		{ID: "3.1", Question: "Divulga as receitas do Poder ou órgão, evidenciando sua previsão e realização?", Dimension: "Receita", LegalBasis: "Arts. 48, §1º, II e 48-A, inciso II, da LC nº 101/00 e art. 8º, II, do Decreto nº 10.540/20.", Classification: models.ClassEssential},
		{ID: "4.1", Question: "Divulga o total das despesas empenhadas, liquidadas e pagas?", Dimension: "Despesa", LegalBasis: "Arts. 7º, VI e 8º, §1º, inciso III, da Lei nº 12.527/2011 - LAI; arts. 48, §1º, inciso II e 48-A, inciso I, da LC nº 101/20; art. 8º, inciso I, do Decreto nº 10.540/20.", Classification: models.ClassEssential},
		{ID: "4.2", Question: "Divulga as despesas por classificação orçamentária?", Dimension: "Despesa", LegalBasis: "Arts. 7º, VI e 8º, §1º, inciso III, da Lei nº 12.527/2011 - LAI; arts. 48, §1º, inciso II e 48-A, inciso I, da LC nº 101/20; art. 8º, inciso I, do Decreto nº 10.540/20.", Classification: models.ClassEssential},
		{ID: "4.3", Question: "Possibilita a consulta de empenhos com os detalhes do beneficiário do pagamento ou credor, o bem fornecido ou serviço prestado e a identificação do procedimento licitatório originário da despesa?", Dimension: "Despesa", LegalBasis: "Arts. 7º, VI e 8º, §1º, inciso III, da Lei nº 12.527/2011 - LAI; arts. 48, §1º, inciso II e 48-A, inciso I, da LC nº 101/20, art. 8º, I, h, do Decreto nº 10.540/2020.", Classification: models.ClassMandatory},
	},
	MatrixCommonExceptStateCos: {
		{ID: "8.6", Question: "Divulga o plano de contratações anual (art. 12, VII, da Lei n. 14.133)?", Dimension: "Licitações", LegalBasis: "Art. 12, §1º, da Lei 14.133/2021.", Classification: models.ClassRecommended},
		{ID: "9.4", Question: "Divulga a ordem cronológica de seus pagamentos, bem como as justificativas que fundamentaram a eventual alteração dessa ordem?", Dimension: "Contratos", LegalBasis: "Art. 141, § 3º, da Lei 14.133/2021.", Classification: models.ClassMandatory},
		{ID: "10.1", Question: "Divulga informações sobre as obras contendo o objeto, a situação atual, as datas de início e de conclusão da obra, empresa contratada e o percentual concluído?", Dimension: "Obras", LegalBasis: "Art. 8º, § 1º, V da Lei nº 12.527/2011;", Classification: models.ClassRecommended},
		{ID: "10.3", Question: "Divulga os quantitativos executados e os preços efetivamente pagos?", Dimension: "Obras", LegalBasis: "Art. 8º, §1º, V da Lei nº 12.527/2011; art. 94, § 3º, da Lei 14.133/2021.", Classification: models.ClassMandatory},
		{ID: "10.4", Question: "Divulga relação das obras paralisadas contendo o motivo, o responsável pela inexecução temporária do objeto do contrato e a data prevista para o reinício da sua execução?", Dimension: "Obras", LegalBasis: "Art. 8º, § 1º, V, da Lei nº 12.527/2011 – LAI e art. 115, § 6º, da Lei nº 14.133/2021.", Classification: models.ClassMandatory},
		{ID: "11.1", Question: "Publica a Prestação de Contas do Ano Anterior (Balanço Geral)?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput, da LC nº 101/00.", Classification: models.ClassMandatory},
		{ID: "11.2", Question: "Divulga o Relatório de Gestão ou Atividades?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 8º, §1º, inciso V, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "11.5", Question: "Divulga o Relatório de Gestão Fiscal (RGF)?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput, da LC nº 101/00. e para Consórcio: inclui-se a Portaria STN nº. 274/16, art. 14, IV", Classification: models.ClassEssential},
	},
	MatrixExecutive: {
		{ID: "3.2", Question: "Divulga a classificação orçamentária por natureza da receita (categoria econômica, origem, espécie)?", Dimension: "Receita", LegalBasis: "Art. 8º, II, e, do Decreto nº 10.540/2020.", Classification: models.ClassEssential},
		{ID: "3.3", Question: "Divulga a lista dos inscritos em dívida ativa, contendo, no mínimo, dados referentes ao nome do inscrito e o valor total da dívida?", Dimension: "Receita", LegalBasis: "Art. 198, § 3º, II da Lei 5.172/1966.", Classification: models.ClassMandatory},
		{ID: "11.4", Question: "Divulga o resultado do julgamento das Contas do Chefe do Poder Executivo pelo Poder Legislativo?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 56, §3º, da LC nº 101/00.", Classification: models.ClassMandatory},
		{ID: "11.8", Question: "Divulga a Lei do Plano Plurianual (PPA) e seus anexos?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput, da LC nº 101/00.", Classification: models.ClassEssential},
		{ID: "11.9", Question: "Divulga a Lei de Diretrizes Orçamentárias (LDO) e seus anexos?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput, da LC nº 101/00.", Classification: models.ClassEssential},
		{ID: "11.10", Question: "Divulga a Lei Orçamentária (LOA) e seus anexos?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput, da LC nº 101/00.", Classification: models.ClassEssential},
		{ID: "16.1", Question: "Divulga as desonerações tributárias concedidas e a fundamentação legal individualizada?", Dimension: "Renúncias de Receitas", LegalBasis: "Art. 7º, inciso VI, da Lei nº 12.527/2011 - LAI e art. 198, §3º, III, do Código Tributário Nacional.", Classification: models.ClassRecommended},
		{ID: "16.2", Question: "Divulga os valores da renúncia fiscal prevista e realizada, por tipo ou espécie de benefício ou incentivo fiscal?", Dimension: "Renúncias de Receitas", LegalBasis: "Art. 37, caput, da CF, Arts. 14, 48, §1º, II e 48-A, inciso II, da LC nº 101/00 e art. 8º, II, do Decreto nº 10.540/20.", Classification: models.ClassRecommended},
		{ID: "16.3", Question: "Identifica os beneficiários das desonerações tributárias (benefícios ou incentivos fiscais)?", Dimension: "Renúncias de Receitas", LegalBasis: "Art. 37, caput, da CF, Arts. 14, 48, §1º, II e 48-A, inciso II, da LC nº 101/00 e art. 8º, II, do Decreto nº 10.540/20.", Classification: models.ClassRecommended},
		{ID: "16.4", Question: "Divulga informações sobre projetos de incentivo à cultura (incluindo esportivos), identificando os projetos aprovados, o respectivo beneficiário e o valor aprovado?", Dimension: "Renúncias de Receitas", LegalBasis: "Art. 37, caput, da CF, Arts. 14, 48, §1º, II e 48-A, inciso II, da LC nº 101/00 e art. 8º, II, do Decreto nº 10.540/20.", Classification: models.ClassRecommended},
		{ID: "17.1", Question: "Identifica as emendas parlamentares recebidas, contendo informações sobre a origem, a forma de repasse, o tipo de emenda, o número da emenda, a autoria, o valor previsto e realizado, o objeto e função de governo?", Dimension: "Emendas Parlamentares", LegalBasis: "Emenda à Constituição nº 105/2019, Portaria Interministerial ME/SEGOV nº 6.411/2021, art. 19; Nota Recomendatória Atricon nº 01/2022; Acórdão nº 518/2023 - TCU-Plenário.", Classification: models.ClassRecommended},
		{ID: "17.2", Question: "Demonstra a execução orçamentária e financeira oriunda das emendas pix?", Dimension: "Emendas Parlamentares", LegalBasis: "Art. 166-A, I (Emenda à Constituição nº 105/2019), Portaria Interministerial ME/SEGOV nº 6.411/2021, art. 19; Nota Recomendatória Atricon nº 01/2022; Acórdão nº 518/2023 - TCU-Plenário, Portaria Conjunta MF/MPO/MGI/SRI-PR nº 1, de 1º de abril de 2024", Classification: models.ClassRecommended},
		{ID: "18.1", Question: "Divulga o plano de saúde, a programação anual e o relatório de gestão?", Dimension: "Saúde", LegalBasis: "Art. 8º, § 1º, V e art. 9º, II, da Lei nº 12.527/2011 - LAI e art. 37, caput, da CF (princípio da publicidade).", Classification: models.ClassMandatory},
		{ID: "18.2", Question: "Divulga informações relacionadas aos serviços de saúde, indicando os horários, os profissionais prestadores de serviços, as especialidades e local?", Dimension: "Saúde", LegalBasis: "Art. 7º, VI, da Lei nº 8.080/1990.", Classification: models.ClassMandatory},
		{ID: "18.3", Question: "Divulga a lista de espera de regulação para acesso às consultas, exames e serviços médicos?", Dimension: "Saúde", LegalBasis: "Portaria nº 1.559, de 1º de agosto de 2008.", Classification: models.ClassRecommended},
		{ID: "18.4", Question: "Divulga lista dos medicamentos a serem fornecidos pelo SUS e informações de como obter medicamentos, incluindo os de alto custo?", Dimension: "Saúde", LegalBasis: "Art. 26, parágrafo único, inciso I, do Decreto n. 7.508, de 28 de junho de 2011 (redação dada pelo Decreto n. 11.161, de 2022).", Classification: models.ClassRecommended},
		{ID: "18.5", Question: "Divulga os estoques de medicamentos das farmácias públicas?", Dimension: "Saúde", LegalBasis: "Art. 6º-A da Lei nº 8.080/1990 (alterada pela Lei nº 14.654/2023)", Classification: models.ClassMandatory},
		{ID: "19.1", Question: "Divulga o plano de educação e o respectivo relatório de resultados?", Dimension: "Educação", LegalBasis: "Art. 37, caput da CF; Art. 8º, § 1º, V, da Lei nº 12.527/2011 – LAI e Art. 8º da Lei nº 13.005/2014.", Classification: models.ClassRecommended},
		{ID: "19.2", Question: "Divulga a lista de espera em creches públicas e os critérios de priorização de acesso a elas?", Dimension: "Educação", LegalBasis: "Art. 37, caput da CF e Art. 8º, § 1º, V, da Lei nº 12.527/2011 – LAI; Art. 5º, §1º, IV da Lei nº 9.394/96 (LDB, alterada pela Lei nº 14.685/23)", Classification: models.ClassMandatory},
	},
	MatrixExecutiveConsortia: {
		{ID: "11.6", Question: "Divulga o Relatório Resumido da Execução Orçamentária (RREO)?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput, da LC nº 101/00. Consórcio: Portaria STN nº. 274/16, art. 14, IV", Classification: models.ClassEssential},
	},
	MatrixLegislative: {
		{ID: "20.1", Question: "Divulga a composição da Casa, com a biografia dos parlamentares?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 37, caput da CF e Art. 8º, § 1º, I, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "20.2", Question: "Divulga as leis e atos infralegais (resoluções, decretos, etc.) produzidos?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 37, da CF (princípio da publicidade) e arts. 6, inciso I, e 8º da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "20.3", Question: "Divulga projetos de leis e de atos infralegais, bem como as respectivas tramitações (contemplando ementa, documentos anexos, situação atual, autor, relator)?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 37, da CF (princípio da publicidade) e arts. 6, inciso I, e 8º da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "20.4", Question: "Divulga a pauta das sessões do Plenário?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "arts. 7º, incisos IV, V e VI, e 8º caput da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "20.5", Question: "Divulga a pauta das Comissões?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 37, caput, da CF e Art. 3, II, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "20.6", Question: "Divulga as atas das sessões, incluindo a lista de presença dos parlamentares em cada sessão?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 37, caput, da CF e Art. 3, II, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "20.7", Question: "Divulga lista sobre as votações nominais?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 37, caput, da CF e Art. 3, II, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "20.8", Question: "Divulga o ato que aprecia as Contas do Chefe do Poder Executivo (Decreto) e o teor do julgamento (Ata ou Resumo da Sessão que aprovou ou rejeitou as contas)?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 7º, inciso VII, alínea b, da Lei nº 12.527/2011 - LAI e art. 56, §3º, da LRF.", Classification: models.ClassMandatory},
		{ID: "20.9", Question: "Há transmissão de sessões, audiências públicas, consultas públicas ou outras formas de participação popular via meios de comunicação como rádio, TV, internet, entre outros?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Arts. 7, 13 e ss. da Lei 13.460/17, c/c art. 9º, inciso II, da Lei nº 12.527/2011 - LAI e art. 37, caput, da CF (princípio da publicidade).", Classification: models.ClassRecommended},
		{ID: "20.10", Question: "Divulga a regulamentação e os valores relativos às cotas para exercício da atividade parlamentar/verba indenizatória?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Arts. 7º, incisos IV e V, e 8º caput da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "20.11", Question: "Divulga dados sobre as atividades legislativas dos parlamentares?", Dimension: "Atividades Finalísticas - PL", LegalBasis: "Art. 37, caput da CF e Art. 8º, § 1º, V, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
	},
	MatrixJudiciary: {
		{ID: "21.1", Question: "Divulga a composição da Casa, com a indicação de onde cada magistrado atua?", Dimension: "Atividades Finalísticas - PJ", LegalBasis: "Art. 37, caput da CF e Art. 8º, § 1º, I, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "21.2", Question: "Divulga pauta das sessões?", Dimension: "Atividades Finalísticas - PJ", LegalBasis: "Art. 7º, V, da Lei nº 12.527/2011 - LAI; art. 12, § 1º, da Lei nº 13.105/15.", Classification: models.ClassMandatory},
		{ID: "21.3", Question: "Divulga ata das sessões de julgamento/deliberativas?", Dimension: "Atividades Finalísticas - PJ", LegalBasis: "Arts. 37, caput (princípio da publicidade), e 93, IX e X, da CF; arts. 7º, II e V, e 8º, caput, da Lei nº 12.527/2011 - LAI.", Classification: models.ClassMandatory},
		{ID: "21.4", Question: "Divulga suas decisões?", Dimension: "Atividades Finalísticas - PJ", LegalBasis: "Arts. 7º, incisos II e VI, e 8º, caput da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "21.5", Question: "Divulga informativo de jurisprudência contendo decisões atualizadas?", Dimension: "Atividades Finalísticas - PJ", LegalBasis: "Arts. 37, caput (princípio da publicidade), e 93, IX e X, da CF; arts. 7º, II e V, e 8º, caput, da Lei nº 12.527/2011 - LAI e art. 24, parágrafo único da do Decreto-Lei nº 4.657/42.", Classification: models.ClassRecommended},
		{ID: "21.6", Question: "Há transmissão das sessões de julgamento e eventuais audiências públicas via meios de comunicação como rádio, TV, internet, entre outros?", Dimension: "Atividades Finalísticas - PJ", LegalBasis: "Art. 37, caput, da CF e Arts. 3º, incisos II, III e X, e 14 da Lei 14.129/2021 e Art. 3º, III, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
	},
	MatrixCourtOfAccounts: {
		{ID: "22.1", Question: "Divulga a composição da Casa, com a indicação das funções exercidas por membro e onde cada um deles atua?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 37, caput da CF e Art. 8º, § 1º, I, da Lei nº 12.527/2011 - LAI.", Classification: models.ClassRecommended},
		{ID: "22.2", Question: "Divulga pauta das sessões?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 7º, incisos IV e V; e 8º, caput da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "22.3", Question: "Divulga ata das sessões de julgamento/deliberativas?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 7º, incisos IV e V, e 8º, caput, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "22.4", Question: "Divulga suas Decisões?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 7º, incisos II e VI, e 8º, caput da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "22.5", Question: "Divulga as peças dos processos em trâmite nos Tribunais de Contas a partir da análise do contraditório?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 37, caput (princípio da publicidade), e 93, IX e X, da CF c/c arts. 7º, II, V, VII, b e 8º, caput, da Lei nº 12.527/2011 - LAI; Normas Brasileiras de Auditoria no Setor Público - NBASP nº 1 (VI, seções 16 e 17) 12 (princípio 4, 31), 20 (18, 28, princípio 7, 35, 36, 37, 38, 39, princípio 8, 40, 41, 42, 43), 100 (43 e 51), 300 (29 e 41), 400 (49) e 300 (133, 134 e 135).", Classification: models.ClassRecommended},
		{ID: "22.6", Question: "Divulga a íntegra dos processos após o trânsito em julgado?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 37, caput (princípio da publicidade), e 93, IX e X, da CF c/c arts. 7º, II, V, VII, b e 8º, caput, da Lei nº 12.527/2011 - LAI, Normas Brasileiras de Auditoria no Setor Público - NBASP nº 1 (VI, seções 16 e 17) 12 (princípio 4, 31), 20 (18, 28, princípio 7, 35, 36, 37, 38, 39, princípio 8, 40, 41, 42, 43), 100 (43 e 51), 300 (29 e 41), 400 (49) e 300 (133, 134 e 135).", Classification: models.ClassMandatory},
		{ID: "22.7", Question: "Divulga informativo de jurisprudência contendo decisões atualizadas?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 37, caput (princípio da publicidade), e 93, IX e X, da CF; arts. 7º, II e V, e 8º, caput, da Lei nº 12.527/2011 - LAI e art. 24, parágrafo único da do Decreto-Lei nº 4.657/42, Normas Brasileiras de Auditoria no Setor Público - NBASP nº 1 (VI, seções 16 e 17) 12 (princípio 4, 31), 20 (18, 28, princípio 7, 35, 36, 37, 38, 39, princípio 8, 40, 41, 42, 43), 100 (43 e 51), 300 (29 e 41), 400 (49) e 300 (133, 134 e 135).", Classification: models.ClassRecommended},
		{ID: "22.8", Question: "Divulga informações técnicas de cunho orientativo?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 37, caput, da CF e Art. 3, II, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "22.9", Question: "Informa sobre valor das condenações (débitos e multas)?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 37, caput, da CF e Art. 3, II, da Lei nº 12.527/2011 - LAI, Normas Brasileiras de Auditoria no Setor Público - NBASP nº 1 (VI, seções 16 e 17) 12 (princípio 4, 31), 20 (18, 28, princípio 7, 35, 36, 37, 38, 39, princípio 8, 40, 41, 42, 43), 100 (43 e 51), 300 (29 e 41), 400 (49) e 300 (133, 134 e 135).", Classification: models.ClassRecommended},
		{ID: "22.10", Question: "Divulga relação de responsáveis que tiveram suas contas julgadas irregulares ou receberam parecer pela reprovação de suas contas?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 7º, incisos IV e V, e 8º caput da LAI, Normas Brasileiras de Auditoria no Setor Público - NBASP nº 1 (VI, seções 16 e 17) 12 (princípio 4, 31), 20 (18, 28, princípio 7, 35, 36, 37, 38, 39, princípio 8, 40, 41, 42, 43), 100 (43 e 51), 300 (29 e 41), 400 (49) e 300 (133, 134 e 135).", Classification: models.ClassRecommended},
		{ID: "22.11", Question: "O Tribunal de Contas disponibiliza dados atualizados encaminhados pelos respectivos entes fiscalizados (Estados ou Municípios) referentes à despesa e à receita?", Dimension: "Atividades Finalísticas", LegalBasis: "Arts. 7º, II, V e VI e 8º, caput da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "22.12", Question: "Há transmissão das sessões de julgamento e eventuais audiências públicas via meios de comunicação como rádio, TV, internet, entre outros?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 37, caput, da CF e Arts. 3º, incisos II, III e X, e 14 da Lei 14.129/2021 e Art. 3º, III, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
	},
	MatrixProsecution: {
		{ID: "23.1", Question: "Divulga a composição da Casa, com a indicação de onde cada membro atual?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 37, caput da CF e Art. 8º, § 1º, I, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "23.2", Question: "Divulga os registros de procedimentos preparatórios e de seus respectivos andamentos?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 3º, II e V, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
		{ID: "23.3", Question: "Divulga os registros de procedimentos de investigação e de seus respectivos andamentos?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 3º, II e V, da Lei nº 12.527/2011 - LAI.", Classification: models.ClassMandatory},
		{ID: "23.4", Question: "Divulga os registros sobre os inquéritos civis e de seus respectivos andamentos?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 3º, II e V, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassMandatory},
	},
	MatrixPublicDefender: {
		{ID: "24.1", Question: "Divulga a composição da Casa?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 37, caput da CF e Art. 8º, § 1º, I, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "24.2", Question: "Disponibiliza material informativo?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 3º, II e V, da Lei nº 12.527/2011 – LAI.", Classification: models.ClassRecommended},
		{ID: "24.3", Question: "Disponibiliza informações sobre o atendimento?", Dimension: "Atividades Finalísticas", LegalBasis: "Art. 4º-A, I, da Lei Complementar nº 80/1994.", Classification: models.ClassRecommended},
	},
	MatrixConsortia: {
		{ID: "11.11", Question: "Divulga o Orçamento do Consórcio Público onde conste a estimativa da receita e a fixação da despesa para o exercício atual?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 48, caput, da LC nº 101/00; Portaria STN nº. 274/16, art 2, II, Art 6 e art. 14, IV.", Classification: models.ClassMandatory},
		{ID: "25.1", Question: "Divulga o protocolo de intenções que antecede a formalização do Contrato?", Dimension: "Atividades Finalísticas", LegalBasis: "Lei Federal nº 11.107/2005, art. 4º, §2º e 5º.", Classification: models.ClassRecommended},
		{ID: "25.2", Question: "Divulga estatuto do consórcio?", Dimension: "Atividades Finalísticas", LegalBasis: "Lei Federal nº 11.107/2005, art. 7º; Decreto Federal nº. 6.017/07, art. 8º, §3º.", Classification: models.ClassRecommended},
		{ID: "25.3", Question: "Divulga os contratos de rateio?", Dimension: "Atividades Finalísticas", LegalBasis: "Lei Federal nº 11.107/2005, art. 8º, §1º; Portaria STN nº. 274/16, art. 14, II; Lei Complementar nº 101, de 4 de maio de 2000.", Classification: models.ClassRecommended},
		{ID: "25.4", Question: "Divulga o Contrato de Programa?", Dimension: "Atividades Finalísticas", LegalBasis: "Lei Federal nº 11.107/2005, art. 13, §1º, II; Decreto Federal nº. 6.017/07, art. 33, V", Classification: models.ClassRecommended},
		{ID: "25.5", Question: "Divulga a ata de eleição dos atuais dirigentes?", Dimension: "Atividades Finalísticas", LegalBasis: "Lei Federal nº 11.107/2005, art. 6º, §1º; Decreto Federal nº. 6.017/07", Classification: models.ClassRecommended},
		{ID: "25.6", Question: "Divulga as atas da assembleia geral?", Dimension: "Atividades Finalísticas", LegalBasis: "Lei Federal nº 11.107/2005; Decreto Federal nº. 6.017/07", Classification: models.ClassRecommended},
		{ID: "25.7", Question: "Divulga os entes consorciados (municípios integrantes)?", Dimension: "Atividades Finalísticas", LegalBasis: "Lei Federal nº 11.107/2005; Decreto Federal nº. 6.017/07", Classification: models.ClassRecommended},
	},
	MatrixStateCompanies: {
		{ID: "4.4", Question: "Publica relação das despesas com aquisições de bens efetuadas pela instituição contendo: identificação do bem, preço unitário, quantidade, nome do fornecedor e valor total de cada aquisição?", Dimension: "Despesa", LegalBasis: "Estatais Dependentes: Art. 3º c/c art. 6º, I, c/c art. 7º, II e VI, c/c art. 8º, caput e § 1º, III-IV e § 2º da Lei 12.527/2011 (LAI); Art. 48 da Lei 13.303/2016. Estatais Independentes: Arts. 3º, III, 6º, I, e 8º, §2º, da Lei nº 12.527/2011(LAI).", Classification: models.ClassRecommended},
	},
	MatrixIndependentStateCompanies: {
		{ID: "11.14", Question: "Pública o Orçamento de Investimentos da instituição que compõe a Lei Orçamentária Anual?", Dimension: "Planejamento e Prestação de contas", LegalBasis: "Art. 3º combinado com art. 6º, I, combinado com art. 7º, II, VI e VII, combinado com art. 8º, caput e § 1º, III e V, e § 2º da Lei 12.527/2011 (LAI); Art. 7º, § 3º, II-IV, do Decreto 7.724/2012;", Classification: models.ClassMandatory},
	},
}

// ForMatrix returns the additional criteria for a matrix type, or an
// empty slice when the type is unknown.
func ForMatrix(matrixType string) []models.Criterion {
	rows, ok := matrices[matrixType]
	if !ok {
		return nil
	}
	out := make([]models.Criterion, len(rows))
	copy(out, rows)
	return out
}

// MatrixTypes lists the known matrix type names.
func MatrixTypes() []string {
	return []string{
		MatrixCommonExceptIndependentStateCos,
		MatrixCommonExceptStateCos,
		MatrixExecutive,
		MatrixExecutiveConsortia,
		MatrixLegislative,
		MatrixJudiciary,
		MatrixCourtOfAccounts,
		MatrixProsecution,
		MatrixPublicDefender,
		MatrixConsortia,
		MatrixStateCompanies,
		MatrixIndependentStateCompanies,
	}
}
