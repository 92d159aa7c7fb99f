// seed carga datos de demostración: categorías, productos con IVA,
// precios (por defecto y con vigencia) y un cliente.
//
// Uso: go run ./cmd/seed
// Requiere la misma configuración de base de datos que cmd/api.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturacion-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	priceRepo := postgres.NewProductPriceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)

	now := time.Now().UTC()

	cat := &entity.Category{
		ID:          uuid.NewString(),
		Name:        "Electrónica",
		Description: "Equipos y accesorios",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := categoryRepo.Create(cat); err != nil {
		fmt.Fprintf(os.Stderr, "crear categoría: %v\n", err)
		os.Exit(1)
	}

	prod := &entity.Product{
		ID:          uuid.NewString(),
		CategoryID:  cat.ID,
		Name:        "Teclado mecánico",
		Description: "Switches rojos, layout ES",
		TaxRate:     decimal.NewFromInt(19),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := productRepo.Create(prod); err != nil {
		fmt.Fprintf(os.Stderr, "crear producto: %v\n", err)
		os.Exit(1)
	}

	// Precio por defecto
	if err := priceRepo.Create(&entity.ProductPrice{
		ID:        uuid.NewString(),
		ProductID: prod.ID,
		Price:     decimal.NewFromInt(250000),
		IsDefault: true,
		CreatedAt: now,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "crear precio por defecto: %v\n", err)
		os.Exit(1)
	}

	// Precio promocional vigente 30 días desde hoy
	from := now
	to := now.AddDate(0, 0, 30)
	if err := priceRepo.Create(&entity.ProductPrice{
		ID:        uuid.NewString(),
		ProductID: prod.ID,
		Price:     decimal.NewFromInt(199000),
		FromDate:  &from,
		ToDate:    &to,
		CreatedAt: now,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "crear precio promocional: %v\n", err)
		os.Exit(1)
	}

	cust := &entity.Customer{
		ID:        uuid.NewString(),
		Name:      "Cliente Demo",
		Email:     "demo@example.com",
		Phone:     "3001234567",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := customerRepo.Create(cust); err != nil {
		fmt.Fprintf(os.Stderr, "crear cliente: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Datos de demo cargados: producto %s, cliente %s\n", prod.ID, cust.ID)
}
