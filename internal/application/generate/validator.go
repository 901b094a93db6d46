package generate

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/aurelion-datagen/internal/domain/entity"
)

// DuplicateFinding un par (venta, producto) repetido fuera del fallback de
// duplicado forzado del motor.
type DuplicateFinding struct {
	SaleID    int
	ProductID int
	Lines     int
}

// ItemCountStats distribución de cantidad de líneas por venta.
type ItemCountStats struct {
	Mean   float64
	Median float64
	Min    int
	Max    int
}

// AmountStats distribución del monto total por venta.
type AmountStats struct {
	Mean   decimal.Decimal
	Median decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
}

// CountBucket porción de ventas dentro de un rango de cantidad de líneas.
// Target es la proporción esperada por diseño (0 = sin objetivo explícito).
type CountBucket struct {
	Label  string
	Min    int
	Max    int
	Count  int
	Share  float64
	Target float64
}

// QualityReport resultado de la auditoría post-generación. Es puramente
// diagnóstico: hallazgos acá no alteran los datos ya generados.
type QualityReport struct {
	Sales      int
	Lines      int
	Duplicates []DuplicateFinding
	ItemCounts ItemCountStats
	Buckets    []CountBucket
	Amounts    AmountStats
}

// Validate audita la tabla de detalle ensamblada: duplicados no sancionados,
// forma de la distribución de líneas por venta contra los objetivos de diseño
// (~30% de ventas de 1-3 ítems, ~5% de 16-25) y dispersión de montos.
// Solo lectura: no muta la tabla.
func Validate(items []entity.LineItem) QualityReport {
	report := QualityReport{Lines: len(items)}
	if len(items) == 0 {
		return report
	}

	type pair struct{ sale, product int }
	occurrences := make(map[pair]int)
	counts := make(map[int]int)
	totals := make(map[int]decimal.Decimal)

	for _, it := range items {
		counts[it.SaleID]++
		if t, ok := totals[it.SaleID]; ok {
			totals[it.SaleID] = t.Add(it.Amount)
		} else {
			totals[it.SaleID] = it.Amount
		}
		// las líneas de duplicado forzado están sancionadas por el motor
		if !it.ForcedDuplicate {
			occurrences[pair{it.SaleID, it.ProductID}]++
		}
	}

	for key, n := range occurrences {
		if n > 1 {
			report.Duplicates = append(report.Duplicates, DuplicateFinding{
				SaleID:    key.sale,
				ProductID: key.product,
				Lines:     n,
			})
		}
	}
	sort.Slice(report.Duplicates, func(i, j int) bool {
		a, b := report.Duplicates[i], report.Duplicates[j]
		if a.SaleID != b.SaleID {
			return a.SaleID < b.SaleID
		}
		return a.ProductID < b.ProductID
	})

	report.Sales = len(counts)
	report.ItemCounts = itemCountStats(counts)
	report.Buckets = countBuckets(counts)
	report.Amounts = amountStats(totals)
	return report
}

func itemCountStats(counts map[int]int) ItemCountStats {
	values := make([]int, 0, len(counts))
	sum := 0
	for _, n := range counts {
		values = append(values, n)
		sum += n
	}
	sort.Ints(values)

	stats := ItemCountStats{
		Mean: float64(sum) / float64(len(values)),
		Min:  values[0],
		Max:  values[len(values)-1],
	}
	mid := len(values) / 2
	if len(values)%2 == 1 {
		stats.Median = float64(values[mid])
	} else {
		stats.Median = float64(values[mid-1]+values[mid]) / 2
	}
	return stats
}

func countBuckets(counts map[int]int) []CountBucket {
	buckets := []CountBucket{
		{Label: "1-3", Min: 1, Max: 3, Target: 0.30},
		{Label: "4-8", Min: 4, Max: 8},
		{Label: "9-15", Min: 9, Max: 15},
		{Label: "16-25", Min: 16, Max: 25, Target: 0.05},
	}
	for _, n := range counts {
		for i := range buckets {
			if n >= buckets[i].Min && n <= buckets[i].Max {
				buckets[i].Count++
				break
			}
		}
	}
	for i := range buckets {
		buckets[i].Share = float64(buckets[i].Count) / float64(len(counts))
	}
	return buckets
}

func amountStats(totals map[int]decimal.Decimal) AmountStats {
	values := make([]decimal.Decimal, 0, len(totals))
	sum := decimal.Zero
	for _, t := range totals {
		values = append(values, t)
		sum = sum.Add(t)
	}
	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })

	n := int64(len(values))
	stats := AmountStats{
		Mean: sum.DivRound(decimal.NewFromInt(n), 2),
		Min:  values[0],
		Max:  values[len(values)-1],
	}
	mid := len(values) / 2
	if len(values)%2 == 1 {
		stats.Median = values[mid]
	} else {
		stats.Median = values[mid-1].Add(values[mid]).DivRound(decimal.NewFromInt(2), 2)
	}
	return stats
}
