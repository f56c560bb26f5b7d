package rbac_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/rbac"
)

var _ = Describe("AssembleCargos", func() {
	linha := func(cargoID uint, cargoNome string, telaID uint, telaNome string, permID uint, permCodigo string, permTelaID uint) rbac.LinkRow {
		return rbac.LinkRow{
			CargoID:         cargoID,
			CargoNome:       cargoNome,
			TelaID:          telaID,
			TelaNome:        telaNome,
			PermissaoID:     permID,
			PermissaoCodigo: permCodigo,
			PermissaoTelaID: permTelaID,
		}
	}

	Context("com linhas de um único cargo", func() {
		It("monta a árvore aninhada sem duplicar telas nem permissões", func() {
			rows := []rbac.LinkRow{
				linha(1, "Recepcionista", 10, "CADASTRO", 100, "INCLUIR", 10),
				linha(1, "Recepcionista", 10, "CADASTRO", 101, "ALTERAR", 10),
				linha(1, "Recepcionista", 10, "CADASTRO", 100, "INCLUIR", 10),
				linha(1, "Recepcionista", 11, "ADMIN", 0, "", 0),
			}

			cargos := rbac.AssembleCargos(rows)

			Expect(cargos).To(HaveLen(1))
			cargo := cargos[0]
			Expect(cargo.ID).To(Equal(uint(1)))
			Expect(cargo.Nome).To(Equal("Recepcionista"))
			Expect(cargo.Telas).To(HaveLen(2))

			Expect(cargo.Telas[0].Nome).To(Equal("CADASTRO"))
			Expect(cargo.Telas[0].Permissoes).To(HaveLen(2))
			Expect(cargo.Telas[0].Permissoes[0].Codigo).To(Equal("INCLUIR"))
			Expect(cargo.Telas[0].Permissoes[1].Codigo).To(Equal("ALTERAR"))

			Expect(cargo.Telas[1].Nome).To(Equal("ADMIN"))
			Expect(cargo.Telas[1].Permissoes).To(BeEmpty())
		})

		It("preserva a ordem de primeira aparição de telas e permissões", func() {
			rows := []rbac.LinkRow{
				linha(1, "Gerente", 20, "FINANCEIRO", 200, "VISUALIZAR", 20),
				linha(1, "Gerente", 10, "CADASTRO", 100, "INCLUIR", 10),
				linha(1, "Gerente", 20, "FINANCEIRO", 201, "EXPORTAR", 20),
			}

			cargo := rbac.AssembleCargo(rows)

			Expect(cargo.Telas).To(HaveLen(2))
			Expect(cargo.Telas[0].Nome).To(Equal("FINANCEIRO"))
			Expect(cargo.Telas[1].Nome).To(Equal("CADASTRO"))
			Expect(cargo.Telas[0].Permissoes[0].Codigo).To(Equal("VISUALIZAR"))
			Expect(cargo.Telas[0].Permissoes[1].Codigo).To(Equal("EXPORTAR"))
		})
	})

	Context("com o produto cartesiano do join por cargo", func() {
		It("anexa cada permissão apenas sob a tela dona", func() {
			// O join repete toda permissão do cargo sob todas as telas
			// do cargo; só a combinação com a tela dona sobrevive
			rows := []rbac.LinkRow{
				linha(1, "Gerente", 10, "CADASTRO", 100, "INCLUIR", 10),
				linha(1, "Gerente", 10, "CADASTRO", 200, "VISUALIZAR", 20),
				linha(1, "Gerente", 20, "FINANCEIRO", 100, "INCLUIR", 10),
				linha(1, "Gerente", 20, "FINANCEIRO", 200, "VISUALIZAR", 20),
			}

			cargo := rbac.AssembleCargo(rows)

			Expect(cargo.Telas).To(HaveLen(2))
			Expect(cargo.Telas[0].Permissoes).To(HaveLen(1))
			Expect(cargo.Telas[0].Permissoes[0].Codigo).To(Equal("INCLUIR"))
			Expect(cargo.Telas[1].Permissoes).To(HaveLen(1))
			Expect(cargo.Telas[1].Permissoes[0].Codigo).To(Equal("VISUALIZAR"))
		})

		It("descarta em silêncio permissão cuja tela dona não está no cargo", func() {
			rows := []rbac.LinkRow{
				linha(1, "Recepcionista", 10, "CADASTRO", 300, "EXPORTAR", 99),
			}

			cargo := rbac.AssembleCargo(rows)

			Expect(cargo.Telas).To(HaveLen(1))
			Expect(cargo.Telas[0].Permissoes).To(BeEmpty())
		})

		It("produz o mesmo resultado independente da ordem das linhas dentro do grupo", func() {
			base := []rbac.LinkRow{
				linha(1, "Gerente", 10, "CADASTRO", 100, "INCLUIR", 10),
				linha(1, "Gerente", 10, "CADASTRO", 200, "VISUALIZAR", 20),
				linha(1, "Gerente", 20, "FINANCEIRO", 100, "INCLUIR", 10),
				linha(1, "Gerente", 20, "FINANCEIRO", 200, "VISUALIZAR", 20),
			}
			embaralhado := []rbac.LinkRow{base[1], base[0], base[3], base[2]}

			Expect(rbac.AssembleCargo(embaralhado)).To(Equal(rbac.AssembleCargo(base)))
		})
	})

	Context("com cargo sem vínculos", func() {
		It("devolve o cargo com lista de telas vazia, nunca nil", func() {
			rows := []rbac.LinkRow{
				{CargoID: 1, CargoNome: "Estagiário"},
			}

			cargo := rbac.AssembleCargo(rows)

			Expect(cargo).NotTo(BeNil())
			Expect(cargo.Nome).To(Equal("Estagiário"))
			Expect(cargo.Telas).NotTo(BeNil())
			Expect(cargo.Telas).To(BeEmpty())
		})
	})

	Context("com vários cargos", func() {
		It("agrupa cada cargo separadamente na ordem de primeira aparição", func() {
			rows := []rbac.LinkRow{
				linha(2, "Gerente", 20, "FINANCEIRO", 200, "VISUALIZAR", 20),
				linha(1, "Recepcionista", 10, "CADASTRO", 100, "INCLUIR", 10),
				linha(2, "Gerente", 10, "CADASTRO", 100, "INCLUIR", 10),
			}

			cargos := rbac.AssembleCargos(rows)

			Expect(cargos).To(HaveLen(2))
			Expect(cargos[0].Nome).To(Equal("Gerente"))
			Expect(cargos[0].Telas).To(HaveLen(2))
			Expect(cargos[1].Nome).To(Equal("Recepcionista"))
			Expect(cargos[1].Telas).To(HaveLen(1))
		})
	})

	Context("sem linhas", func() {
		It("devolve lista vazia em AssembleCargos e nil em AssembleCargo", func() {
			Expect(rbac.AssembleCargos(nil)).To(BeEmpty())
			Expect(rbac.AssembleCargo(nil)).To(BeNil())
		})
	})
})

var _ = Describe("Cargo", func() {
	cargo := entities.Cargo{
		Nome: "Recepcionista",
		Telas: []entities.Tela{
			{Nome: "CADASTRO", Permissoes: []entities.Permissao{{Codigo: "INCLUIR"}}},
		},
	}

	Describe("TemTela", func() {
		It("compara o nome exato, case-sensitive", func() {
			Expect(cargo.TemTela("CADASTRO")).To(BeTrue())
			Expect(cargo.TemTela("cadastro")).To(BeFalse())
			Expect(cargo.TemTela("FINANCEIRO")).To(BeFalse())
		})
	})
})
