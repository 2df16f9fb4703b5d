// Package chartservice reduz produtos e vendas às séries consumidas pelo renderizador de gráficos.
// Todas as funções são puras: dependem apenas das coleções e do instante now.
package chartservice

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"govendas/internal/domain"
)

// Paleta fixa de cores.
const (
	ColorPrimary   = "#667eea"
	ColorSecondary = "#764ba2"
	ColorSuccess   = "#56ab2f"
	ColorWarning   = "#ffc107"
	ColorDanger    = "#dc3545"
	ColorInfo      = "#17a2b8"
)

// Palette é a ordem das cores usada no ranking de produtos.
var Palette = []string{ColorPrimary, ColorSecondary, ColorSuccess, ColorWarning, ColorDanger, ColorInfo}

const (
	dailyWindow      = 7
	revenueWindow    = 30
	topProductsLimit = 6
	stockLimit       = 8
	labelMaxRunes    = 15
)

var weekdayShort = [...]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."}

// daysAgo retorna floor((now - t) / 24h). ok é falso para vendas no futuro.
func daysAgo(now, t time.Time) (days int, ok bool) {
	d := now.Sub(t)
	if d < 0 {
		return 0, false
	}
	return int(d / (24 * time.Hour)), true
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// DailySales soma o total das vendas de cada um dos últimos 7 dias (mais antigo primeiro).
func DailySales(sales []domain.Sale, now time.Time) domain.Series {
	labels := make([]string, dailyWindow)
	for i := 0; i < dailyWindow; i++ {
		day := now.AddDate(0, 0, -(dailyWindow - 1 - i))
		labels[i] = weekdayShort[day.Weekday()]
	}

	buckets := make([]decimal.Decimal, dailyWindow)
	for _, s := range sales {
		days, ok := daysAgo(now, s.OccurredAt)
		if !ok || days >= dailyWindow {
			continue
		}
		idx := dailyWindow - 1 - days
		buckets[idx] = buckets[idx].Add(s.Total)
	}

	values := make([]float64, dailyWindow)
	for i, b := range buckets {
		values[i] = toFloat(b)
	}
	return domain.Series{Labels: labels, Values: values}
}

// TopProducts soma as quantidades vendidas por nome de produto e devolve as 6 maiores.
// Empates mantêm a ordem em que o nome apareceu pela primeira vez no histórico.
func TopProducts(sales []domain.Sale) domain.Series {
	type entry struct {
		name string
		qty  int
	}

	var ranking []entry
	position := map[string]int{}
	for _, s := range sales {
		for _, it := range s.Items {
			if i, ok := position[it.ProductName]; ok {
				ranking[i].qty += it.Quantity
				continue
			}
			position[it.ProductName] = len(ranking)
			ranking = append(ranking, entry{name: it.ProductName, qty: it.Quantity})
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].qty > ranking[j].qty })
	if len(ranking) > topProductsLimit {
		ranking = ranking[:topProductsLimit]
	}

	series := domain.Series{
		Labels: make([]string, len(ranking)),
		Values: make([]float64, len(ranking)),
		Colors: make([]string, len(ranking)),
	}
	for i, e := range ranking {
		series.Labels[i] = e.name
		series.Values[i] = float64(e.qty)
		series.Colors[i] = Palette[i]
	}
	return series
}

// StockSnapshot mostra o estoque dos 8 primeiros produtos, colorido pelo status.
func StockSnapshot(products []domain.Product) domain.Series {
	if len(products) > stockLimit {
		products = products[:stockLimit]
	}

	series := domain.Series{
		Labels: make([]string, len(products)),
		Values: make([]float64, len(products)),
		Colors: make([]string, len(products)),
	}
	for i, p := range products {
		series.Labels[i] = truncateLabel(p.Name)
		series.Values[i] = float64(p.StockQuantity)
		series.Colors[i] = stockColor(p.StockQuantity)
	}
	return series
}

func truncateLabel(name string) string {
	runes := []rune(name)
	if len(runes) > labelMaxRunes {
		return string(runes[:labelMaxRunes]) + "..."
	}
	return name
}

func stockColor(quantity int) string {
	switch domain.StatusFor(quantity) {
	case domain.StockStatusOut:
		return ColorDanger
	case domain.StockStatusLow:
		return ColorWarning
	default:
		return ColorSuccess
	}
}

// CumulativeRevenue acumula a receita diária dos últimos 30 dias (mais antigo primeiro).
// A série nunca decresce.
func CumulativeRevenue(sales []domain.Sale, now time.Time) domain.Series {
	labels := make([]string, revenueWindow)
	for i := 0; i < revenueWindow; i++ {
		labels[i] = now.AddDate(0, 0, -(revenueWindow - 1 - i)).Format("02/01")
	}

	daily := make([]decimal.Decimal, revenueWindow)
	for _, s := range sales {
		days, ok := daysAgo(now, s.OccurredAt)
		if !ok || days >= revenueWindow {
			continue
		}
		idx := revenueWindow - 1 - days
		daily[idx] = daily[idx].Add(s.Total)
	}

	values := make([]float64, revenueWindow)
	running := decimal.Zero
	for i, d := range daily {
		running = running.Add(d)
		values[i] = toFloat(running)
	}
	return domain.Series{Labels: labels, Values: values}
}

// All calcula as quatro séries de uma vez.
func All(products []domain.Product, sales []domain.Sale, now time.Time) domain.Charts {
	return domain.Charts{
		DailySales:        DailySales(sales, now),
		TopProducts:       TopProducts(sales),
		StockSnapshot:     StockSnapshot(products),
		CumulativeRevenue: CumulativeRevenue(sales, now),
	}
}
