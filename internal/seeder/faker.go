package seeder

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker produces pt-BR flavoured values. It shares the random stream of its
// GenerationContext, so it is exactly as deterministic.
type Faker struct {
	g       *GenerationContext
	gf      *gofakeit.Faker
	counter int
}

func newFaker(g *GenerationContext) *Faker {
	return &Faker{
		g:  g,
		gf: gofakeit.NewFaker(g.rng, false),
	}
}

var (
	firstNames = []string{
		"Ana", "João", "Maria", "Pedro", "Luiza", "Gabriel", "Juliana", "Lucas", "Fernanda", "Rafael",
		"Beatriz", "Mateus", "Camila", "Gustavo", "Larissa", "Thiago", "Letícia", "Felipe", "Mariana", "Bruno",
		"Isabela", "Rodrigo", "Carolina", "André", "Patrícia", "Vinícius", "Amanda", "Diego", "Bianca", "Caio",
		"Sofia", "Heitor", "Helena", "Davi", "Valentina", "Lorenzo", "Alice", "Otávio", "Lívia", "Márcio",
	}
	lastNames = []string{
		"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira", "Lima", "Gomes",
		"Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes", "Soares", "Fernandes", "Vieira", "Barbosa",
		"Rocha", "Dias", "Nascimento", "Andrade", "Moreira", "Nunes", "Marques", "Machado", "Mendes", "Freitas",
		"Cardoso", "Ramos", "Gonçalves", "Araújo", "Pinto", "Teixeira", "Correia", "Cavalcanti", "Monteiro", "Moraes",
	}
	cities = []string{
		"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Curitiba", "Porto Alegre", "Salvador", "Recife",
		"Fortaleza", "Brasília", "Goiânia", "Manaus", "Belém", "Florianópolis", "Vitória", "Campinas",
		"Natal", "João Pessoa", "Maceió", "Teresina", "São Luís", "Uberlândia", "Londrina", "Joinville",
	}
	states = []string{
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
		"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	}
	streetTypes   = []string{"Rua", "Avenida", "Travessa", "Alameda", "Praça", "Rodovia"}
	streetNames   = []string{"das Flores", "Brasil", "Sete de Setembro", "XV de Novembro", "Paulista", "Getúlio Vargas", "Tiradentes", "Dom Pedro II", "da Consolação", "Santos Dumont", "Rio Branco", "das Palmeiras", "Marechal Deodoro", "Barão do Rio Branco"}
	neighborhoods = []string{"Centro", "Jardim América", "Vila Mariana", "Boa Vista", "Santa Cecília", "Liberdade", "Copacabana", "Savassi", "Batel", "Moinhos de Vento", "Pinheiros", "Aldeota"}
	companyTails  = []string{"LTDA", "S.A.", "ME", "EIRELI", "e Filhos", "Comércio"}
	emailDomains  = []string{"example.com.br", "email.com", "correio.net", "mail.com.br"}
	loremWords    = []string{
		"produto", "qualidade", "entrega", "cliente", "excelente", "rápido", "atendimento", "preço", "loja", "compra",
		"pedido", "bom", "ótimo", "recomendo", "chegou", "embalagem", "tamanho", "cor", "material", "perfeito",
		"problema", "troca", "prazo", "frete", "novo", "original", "confortável", "bonito", "simples", "prático",
		"durável", "leve", "resistente", "moderno", "clássico", "garantia", "suporte", "valor", "desconto", "estoque",
	}
)

func (f *Faker) FirstName() string { return Choice(f.g, firstNames) }
func (f *Faker) LastName() string  { return Choice(f.g, lastNames) }

func (f *Faker) Name() string {
	return f.FirstName() + " " + f.LastName()
}

// Email returns an address that is unique within the run.
func (f *Faker) Email() string {
	return f.EmailFor(f.FirstName(), f.LastName())
}

func (f *Faker) EmailFor(first, last string) string {
	f.counter++
	local := strings.ReplaceAll(Slugify(first), "-", "") + "." + strings.ReplaceAll(Slugify(last), "-", "")
	return fmt.Sprintf("%s%d@%s", local, f.counter, Choice(f.g, emailDomains))
}

func (f *Faker) Username() string {
	f.counter++
	return fmt.Sprintf("%s%d", strings.ReplaceAll(Slugify(f.FirstName()), "-", ""), f.counter)
}

func (f *Faker) Phone() string {
	return fmt.Sprintf("(%02d) %04d-%04d", f.g.IntRange(11, 99), f.g.IntRange(2000, 5999), f.g.Intn(10000))
}

func (f *Faker) CellPhone() string {
	return fmt.Sprintf("+55 (%02d) 9%04d-%04d", f.g.IntRange(11, 99), f.g.Intn(10000), f.g.Intn(10000))
}

func (f *Faker) City() string      { return Choice(f.g, cities) }
func (f *Faker) StateAbbr() string { return Choice(f.g, states) }

func (f *Faker) Street() string {
	return Choice(f.g, streetTypes) + " " + Choice(f.g, streetNames)
}

func (f *Faker) BuildingNumber() string {
	return fmt.Sprintf("%d", f.g.IntRange(1, 9999))
}

func (f *Faker) Neighborhood() string { return Choice(f.g, neighborhoods) }

func (f *Faker) Postcode() string {
	return fmt.Sprintf("%05d-%03d", f.g.Intn(100000), f.g.Intn(1000))
}

func (f *Faker) Address() string {
	return fmt.Sprintf("%s, %s - %s, %s/%s", f.Street(), f.BuildingNumber(), f.Neighborhood(), f.City(), f.StateAbbr())
}

func (f *Faker) Company() string {
	return f.LastName() + " " + Choice(f.g, companyTails)
}

// CPF returns a formatted individual taxpayer number with valid check digits.
func (f *Faker) CPF() string {
	d := make([]int, 11)
	for i := 0; i < 9; i++ {
		d[i] = f.g.Intn(10)
	}
	d[9] = checkDigit(d[:9], 10)
	d[10] = checkDigit(d[:10], 11)
	return fmt.Sprintf("%d%d%d.%d%d%d.%d%d%d-%d%d", d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9], d[10])
}

// CNPJ returns a formatted company registry number for a head office.
func (f *Faker) CNPJ() string {
	d := make([]int, 14)
	for i := 0; i < 8; i++ {
		d[i] = f.g.Intn(10)
	}
	d[11] = 1
	d[12] = cnpjDigit(d[:12], []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	d[13] = cnpjDigit(d[:13], []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	return fmt.Sprintf("%d%d.%d%d%d.%d%d%d/%d%d%d%d-%d%d",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9], d[10], d[11], d[12], d[13])
}

func checkDigit(digits []int, weight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (weight - i)
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func cnpjDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func (f *Faker) Word() string { return Choice(f.g, loremWords) }

func (f *Faker) Words(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = f.Word()
	}
	return words
}

// Sentence returns a capitalised sentence of n words.
func (f *Faker) Sentence(n int) string {
	return capitalize(strings.Join(f.Words(n), " ")) + "."
}

func (f *Faker) Paragraph(sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = f.Sentence(f.g.IntRange(4, 10))
	}
	return strings.Join(parts, " ")
}

// Text returns sentences up to roughly maxChars characters.
func (f *Faker) Text(maxChars int) string {
	var b strings.Builder
	for {
		s := f.Sentence(f.g.IntRange(4, 10))
		if b.Len() > 0 && b.Len()+1+len(s) > maxChars {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
		if b.Len() >= maxChars {
			break
		}
	}
	return b.String()
}

// Title capitalises the first letter of a random word.
func (f *Faker) Title() string {
	return capitalize(f.gf.Word())
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

func (f *Faker) Hex(n int) string {
	b := make([]byte, n)
	f.g.rng.Read(b)
	return hex.EncodeToString(b)
}

// SHA256 returns 64 hex characters shaped like a digest.
func (f *Faker) SHA256() string { return f.Hex(32) }

func (f *Faker) UserAgent() string { return f.gf.UserAgent() }
func (f *Faker) IPv4() string      { return f.gf.IPv4Address() }

func (f *Faker) ImageURL(w, h int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", f.Hex(4), w, h)
}
