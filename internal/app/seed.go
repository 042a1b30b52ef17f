package app

import "vademecum/api/internal/corpus"

// seedDocuments is the starter corpus installed on first boot. Article IDs
// are stable anchors the browsing surface scrolls to; title and chapter IDs
// are assigned by the store on insert.
func seedDocuments() []corpus.Document {
	return []corpus.Document{
		{
			Key:   "cf88",
			Title: "Constituição Federal",
			Kind:  corpus.KindConstitution,
			Titles: []corpus.Title{
				{
					Number: "I",
					Name:   "Dos Princípios Fundamentais",
					Articles: []corpus.Article{
						{
							ID:     "cf88-art-1",
							Number: "1º",
							Text:   "A República Federativa do Brasil, formada pela união indissolúvel dos Estados e Municípios e do Distrito Federal, constitui-se em Estado Democrático de Direito e tem como fundamentos:",
							Items: []string{
								"I - a soberania;",
								"II - a cidadania;",
								"III - a dignidade da pessoa humana;",
								"IV - os valores sociais do trabalho e da livre iniciativa;",
								"V - o pluralismo político.",
							},
							Paragraphs: []string{
								"Parágrafo único. Todo o poder emana do povo, que o exerce por meio de representantes eleitos ou diretamente, nos termos desta Constituição.",
							},
						},
						{
							ID:     "cf88-art-2",
							Number: "2º",
							Text:   "São Poderes da União, independentes e harmônicos entre si, o Legislativo, o Executivo e o Judiciário.",
						},
						{
							ID:     "cf88-art-3",
							Number: "3º",
							Text:   "Constituem objetivos fundamentais da República Federativa do Brasil:",
							Items: []string{
								"I - construir uma sociedade livre, justa e solidária;",
								"II - garantir o desenvolvimento nacional;",
								"III - erradicar a pobreza e a marginalização e reduzir as desigualdades sociais e regionais;",
								"IV - promover o bem de todos, sem preconceitos de origem, raça, sexo, cor, idade e quaisquer outras formas de discriminação.",
							},
						},
					},
				},
				{
					Number: "II",
					Name:   "Dos Direitos e Garantias Fundamentais",
					Chapters: []corpus.Chapter{
						{
							Number: "I",
							Name:   "Dos Direitos e Deveres Individuais e Coletivos",
							Articles: []corpus.Article{
								{
									ID:     "cf88-art-5",
									Number: "5º",
									Text:   "Todos são iguais perante a lei, sem distinção de qualquer natureza, garantindo-se aos brasileiros e aos estrangeiros residentes no País a inviolabilidade do direito à vida, à liberdade, à igualdade, à segurança e à propriedade, nos termos seguintes:",
									Items: []string{
										"I - homens e mulheres são iguais em direitos e obrigações, nos termos desta Constituição;",
										"II - ninguém será obrigado a fazer ou deixar de fazer alguma coisa senão em virtude de lei;",
										"III - ninguém será submetido a tortura nem a tratamento desumano ou degradante;",
									},
									Paragraphs: []string{
										"§ 1º As normas definidoras dos direitos e garantias fundamentais têm aplicação imediata.",
										"§ 2º Os direitos e garantias expressos nesta Constituição não excluem outros decorrentes do regime e dos princípios por ela adotados.",
									},
								},
							},
						},
					},
				},
			},
		},
		{
			Key:   "cc02",
			Title: "Código Civil",
			Kind:  corpus.KindCode,
			Titles: []corpus.Title{
				{
					Number: "I",
					Name:   "Das Pessoas Naturais",
					Articles: []corpus.Article{
						{
							ID:     "cc02-art-1",
							Number: "1º",
							Text:   "Toda pessoa é capaz de direitos e deveres na ordem civil.",
						},
						{
							ID:     "cc02-art-2",
							Number: "2º",
							Text:   "A personalidade civil da pessoa começa do nascimento com vida; mas a lei põe a salvo, desde a concepção, os direitos do nascituro.",
						},
						{
							ID:     "cc02-art-6",
							Number: "6º",
							Text:   "A existência da pessoa natural termina com a morte; presume-se esta, quanto aos ausentes, nos casos em que a lei autoriza a abertura de sucessão definitiva.",
						},
					},
				},
				{
					Number: "III",
					Name:   "Da Posse e da Propriedade",
					Chapters: []corpus.Chapter{
						{
							Number: "I",
							Name:   "Da Posse e sua Classificação",
							Articles: []corpus.Article{
								{
									ID:     "cc02-art-1196",
									Number: "1.196",
									Text:   "Considera-se possuidor todo aquele que tem de fato o exercício, pleno ou não, de algum dos poderes inerentes à propriedade.",
								},
								{
									ID:     "cc02-art-1197",
									Number: "1.197",
									Text:   "A posse direta, de pessoa que tem a coisa em seu poder, temporariamente, em virtude de direito pessoal, ou real, não anula a indireta, de quem aquela foi havida.",
								},
							},
						},
						{
							Number: "III",
							Name:   "Da Propriedade em Geral",
							Articles: []corpus.Article{
								{
									ID:     "cc02-art-1228",
									Number: "1.228",
									Text:   "O proprietário tem a faculdade de usar, gozar e dispor da coisa, e o direito de reavê-la do poder de quem quer que injustamente a possua ou detenha.",
									Paragraphs: []string{
										"§ 1º O direito de propriedade deve ser exercido em consonância com as suas finalidades econômicas e sociais.",
									},
								},
								{
									ID:     "cc02-art-1230",
									Number: "1.230",
									Text:   "A propriedade do solo não abrange as jazidas, minas e demais recursos minerais, os potenciais de energia hidráulica e os monumentos arqueológicos, que constituem propriedade distinta da do solo.",
								},
							},
						},
					},
				},
			},
		},
		{
			Key:   "cdc",
			Title: "Código de Defesa do Consumidor",
			Kind:  corpus.KindStatute,
			Titles: []corpus.Title{
				{
					Number: "I",
					Name:   "Dos Direitos do Consumidor",
					Articles: []corpus.Article{
						{
							ID:     "cdc-art-1",
							Number: "1º",
							Text:   "O presente código estabelece normas de proteção e defesa do consumidor, de ordem pública e interesse social.",
						},
						{
							ID:     "cdc-art-2",
							Number: "2º",
							Text:   "Consumidor é toda pessoa física ou jurídica que adquire ou utiliza produto ou serviço como destinatário final.",
							Paragraphs: []string{
								"Parágrafo único. Equipara-se a consumidor a coletividade de pessoas, ainda que indetermináveis, que haja intervindo nas relações de consumo.",
							},
						},
						{
							ID:     "cdc-art-3",
							Number: "3º",
							Text:   "Fornecedor é toda pessoa física ou jurídica, pública ou privada, nacional ou estrangeira, que desenvolve atividade de produção, montagem, criação, construção, transformação, importação, exportação, distribuição ou comercialização de produtos ou prestação de serviços.",
						},
					},
				},
			},
		},
	}
}
