package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/domain"
	domainbilling "github.com/jortegav/retailos-api/internal/domain/billing"
	"github.com/jortegav/retailos-api/internal/domain/entity"
	"github.com/jortegav/retailos-api/internal/domain/repository"
)

const dueDateLayout = "2006-01-02"

// CreateInvoiceUseCase crea una factura y descuenta el inventario en una sola
// transacción: cabecera, líneas, stock y ledger se confirman juntos o ninguno.
type CreateInvoiceUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
	}
}

// CreateInvoice valida la solicitud, y dentro de una transacción: bloquea cada
// producto afectado, verifica disponibilidad contra el valor vivo (líneas
// repetidas del mismo producto se acumulan antes de verificar), snapshotea
// precios según el tipo de cliente, calcula totales y persiste factura,
// líneas, descuentos de stock y una fila de ledger por línea.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.BusinessName == "" || in.CustomerName == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCustomerType(in.CustomerType) {
		return nil, fmt.Errorf("tipo de cliente %q: %w", in.CustomerType, domain.ErrInvalidInput)
	}
	if in.TaxPercent.IsNegative() {
		return nil, fmt.Errorf("tax_percent negativo: %w", domain.ErrInvalidInput)
	}
	var dueDate time.Time
	if in.DueDate != "" {
		var err error
		dueDate, err = time.Parse(dueDateLayout, in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("due_date %q: %w", in.DueDate, domain.ErrInvalidInput)
		}
	}

	// Cantidad total requerida por producto: líneas repetidas se acumulan para
	// verificarse contra una sola lectura autoritativa del stock.
	required := make(map[string]int)
	var productOrder []string
	for _, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, fmt.Errorf("línea con producto %q y cantidad %d: %w",
				line.ProductID, line.Quantity, domain.ErrInvalidInput)
		}
		if _, seen := required[line.ProductID]; !seen {
			productOrder = append(productOrder, line.ProductID)
		}
		required[line.ProductID] += line.Quantity
	}

	now := time.Now()
	invoiceID := uuid.New().String()
	number := fmt.Sprintf("INV-%d", now.Unix())

	var inv *entity.Invoice
	var items []*entity.InvoiceItem

	err := uc.txRunner.RunBilling(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// 1) Bloquear cada producto, verificar disponibilidad acumulada y
		// descontar con update condicional (stock >= qty). Cualquier fallo
		// revierte la transacción completa.
		productsByID := make(map[string]*entity.Product, len(productOrder))
		for _, productID := range productOrder {
			product, err := productRepo.GetForUpdate(productID)
			if err != nil {
				return err
			}
			if product == nil || product.UserID != userID {
				return fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
			}
			need := required[productID]
			if product.Stock < need {
				return fmt.Errorf("producto %s: solicitado %d, disponible %d: %w",
					productID, need, product.Stock, domain.ErrInsufficientStock)
			}
			applied, err := productRepo.DecrementStock(productID, need)
			if err != nil {
				return err
			}
			if !applied {
				// La condición stock >= qty no se cumplió pese al bloqueo de fila
				return fmt.Errorf("producto %s: solicitado %d, disponible %d: %w",
					productID, need, product.Stock, domain.ErrInsufficientStock)
			}
			productsByID[productID] = product
		}

		// 2) Snapshot de precios por línea y totales financieros
		lines := make([]domainbilling.Line, 0, len(in.Items))
		for _, line := range in.Items {
			product := productsByID[line.ProductID]
			lines = append(lines, domainbilling.Line{
				Quantity:  line.Quantity,
				CostPrice: product.CostPrice,
				SalePrice: domainbilling.SalePriceFor(in.CustomerType, product),
			})
		}
		totals := domainbilling.ComputeTotals(lines, in.TaxPercent)

		// 3) Cabecera
		inv = &entity.Invoice{
			ID:           invoiceID,
			UserID:       userID,
			Number:       number,
			BusinessName: in.BusinessName,
			CustomerName: in.CustomerName,
			CustomerType: in.CustomerType,
			Subtotal:     totals.Subtotal,
			TaxAmount:    totals.TaxAmount,
			Total:        totals.Total,
			Profit:       totals.Profit,
			Status:       entity.InvoiceStatusPending,
			DueDate:      dueDate,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}

		// 4) Una línea persistida y una fila de ledger por cada línea solicitada
		reason := fmt.Sprintf("Invoice #%s", number)
		for i, line := range in.Items {
			product := productsByID[line.ProductID]
			item := &entity.InvoiceItem{
				ID:          uuid.New().String(),
				InvoiceID:   inv.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				CostPrice:   product.CostPrice,
				SalePrice:   lines[i].SalePrice,
				Profit:      lines[i].SalePrice.Sub(product.CostPrice),
				CreatedAt:   now,
			}
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
			items = append(items, item)

			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				UserID:      userID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Type:        entity.MovementTypeOut,
				Quantity:    line.Quantity,
				Reason:      reason,
				CreatedAt:   now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, items), nil
}

// GetInvoice obtiene una factura del tenant con su detalle completo.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, userID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.UserID != userID {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// ListInvoices lista facturas del tenant, más recientes primero (sin líneas).
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, userID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv, nil))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		BusinessName: inv.BusinessName,
		CustomerName: inv.CustomerName,
		CustomerType: inv.CustomerType,
		Subtotal:     inv.Subtotal,
		TaxAmount:    inv.TaxAmount,
		Total:        inv.Total,
		Profit:       inv.Profit,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt,
	}
	if !inv.DueDate.IsZero() {
		resp.DueDate = inv.DueDate.Format(dueDateLayout)
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			CostPrice:   it.CostPrice,
			SalePrice:   it.SalePrice,
			Profit:      it.Profit,
		})
	}
	return resp
}
