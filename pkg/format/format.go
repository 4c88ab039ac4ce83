// Package format reúne os helpers de apresentação: moeda em pt-BR, datas e as
// máscaras de telefone/CPF/CNPJ usadas nos cadastros. São transformações puras
// de string, sem dependência do agregador.
package format

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Money formata um valor monetário em reais (R$ 1.234,56).
func Money(v decimal.Decimal) string {
	f, _ := v.Float64()
	return ptBR.Sprint(currency.Symbol(currency.BRL.Amount(f)))
}

// FormatDate converte uma data ISO (YYYY-MM-DD) para dd/mm/aaaa.
// A data é montada a partir dos componentes ano/mês/dia no fuso local;
// parsear a string ISO como UTC deslocaria o dia exibido em fusos negativos.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.ParseInLocation("2006-01-02", iso, time.Local)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

var nonDigits = regexp.MustCompile(`\D`)

// FormatCurrencyInput normaliza uma entrada de dígitos em moeda exibível:
// "123456" -> "R$ 1.234,56". Entrada vazia (sem dígitos) devolve "".
func FormatCurrencyInput(value string) string {
	digits := nonDigits.ReplaceAllString(value, "")
	if digits == "" {
		return ""
	}
	for len(digits) < 3 {
		digits = "0" + digits
	}
	cents := digits[len(digits)-2:]
	reais := strings.TrimLeft(digits[:len(digits)-2], "0")
	if reais == "" {
		reais = "0"
	}
	return "R$ " + groupThousands(reais) + "," + cents
}

// groupThousands insere pontos de milhar da direita para a esquerda.
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// ── Máscaras de documento/contato ─────────────────────────────────────────────
// Cada máscara replica a sequência de substituições do formulário original:
// substituições de primeira ocorrência aplicadas em cascata sobre os dígitos.

var (
	rePhoneDDD  = regexp.MustCompile(`(\d{2})(\d)`)
	rePhoneDash = regexp.MustCompile(`(\d{5})(\d)`)

	reCPFDot  = regexp.MustCompile(`(\d{3})(\d)`)
	reCPFDash = regexp.MustCompile(`(\d{3})(\d{1,2})$`)

	reCNPJDot1  = regexp.MustCompile(`^(\d{2})(\d)`)
	reCNPJDot2  = regexp.MustCompile(`^(\d{2})\.(\d{3})(\d)`)
	reCNPJSlash = regexp.MustCompile(`\.(\d{3})(\d)`)
	reCNPJDash  = regexp.MustCompile(`(\d{4})(\d)`)
)

// MaskPhone formata um telefone BR: "31955554444" -> "(31) 95555-4444".
func MaskPhone(value string) string {
	if value == "" {
		return ""
	}
	v := truncate(nonDigits.ReplaceAllString(value, ""), 11)
	v = replaceFirst(rePhoneDDD, v, "($1) $2")
	v = replaceFirst(rePhoneDash, v, "$1-$2")
	return v
}

// MaskCPF formata um CPF: "12345678900" -> "123.456.789-00".
func MaskCPF(value string) string {
	if value == "" {
		return ""
	}
	v := truncate(nonDigits.ReplaceAllString(value, ""), 11)
	v = replaceFirst(reCPFDot, v, "$1.$2")
	v = replaceFirst(reCPFDot, v, "$1.$2")
	v = replaceFirst(reCPFDash, v, "$1-$2")
	return v
}

// MaskCNPJ formata um CNPJ: "99999999000100" -> "99.999.999/0001-00".
func MaskCNPJ(value string) string {
	if value == "" {
		return ""
	}
	v := truncate(nonDigits.ReplaceAllString(value, ""), 14)
	v = replaceFirst(reCNPJDot1, v, "$1.$2")
	v = replaceFirst(reCNPJDot2, v, "$1.$2.$3")
	v = replaceFirst(reCNPJSlash, v, ".$1/$2")
	v = replaceFirst(reCNPJDash, v, "$1-$2")
	return truncate(v, 18)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// replaceFirst substitui apenas a primeira ocorrência do padrão,
// expandindo $1, $2... como em ReplaceAllString.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	return s[:m[0]] + string(re.ExpandString(nil, repl, s, m)) + s[m[1]:]
}
