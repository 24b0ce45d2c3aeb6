package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento del libro diario.
const (
	EntryTypeSale       = "SALE"       // venta (suma revenue, descuenta stock)
	EntryTypeExpense    = "EXPENSE"    // gasto asociado a un producto o general
	EntryTypeStockIn    = "STOCK_IN"   // compra de mercancía (suma stock y costo)
	EntryTypeAdjustment = "ADJUSTMENT" // ajuste manual; el motor de desempeño lo ignora
)

// LedgerEntry representa un asiento del libro diario: una venta, un gasto o
// una entrada de mercancía. Los asientos son hechos inmutables; una vez
// registrados no se editan (las correcciones se registran como ADJUSTMENT).
type LedgerEntry struct {
	ID         string
	BusinessID string
	ProductID  string          // vacío si el asiento no está ligado a un producto
	Type       string          // SALE, EXPENSE, STOCK_IN, ADJUSTMENT
	Amount     decimal.Decimal // valor monetario, siempre >= 0
	Quantity   int64           // unidades (relevante en SALE y STOCK_IN)
	Note       string
	Date       time.Time
	CreatedAt  time.Time
	CreatedBy  string
}
