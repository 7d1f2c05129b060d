package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

const billColumns = `id, bill_ref, customer_id, subtotal, discount_percent, discount_amount,
	final_amount, amount_paid, amount_due, payment_status, due_date, public_token,
	created_at, updated_at`

func scanBill(row pgx.Row, b *entity.Bill) error {
	return row.Scan(
		&b.ID, &b.BillRef, &b.CustomerID, &b.Subtotal, &b.DiscountPercent,
		&b.DiscountAmount, &b.FinalAmount, &b.AmountPaid, &b.AmountDue,
		&b.PaymentStatus, &b.DueDate, &b.PublicToken, &b.CreatedAt, &b.UpdatedAt,
	)
}

// Create persiste la cabecera de la factura.
func (r *BillRepo) Create(bill *entity.Bill) error {
	query := `
		INSERT INTO bills (id, bill_ref, customer_id, subtotal, discount_percent, discount_amount,
			final_amount, amount_paid, amount_due, payment_status, due_date, public_token,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.BillRef, bill.CustomerID, bill.Subtotal, bill.DiscountPercent,
		bill.DiscountAmount, bill.FinalAmount, bill.AmountPaid, bill.AmountDue,
		bill.PaymentStatus, bill.DueDate, bill.PublicToken, bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura.
func (r *BillRepo) CreateItem(item *entity.BillItem) error {
	query := `
		INSERT INTO bill_items (id, bill_id, product_name, sku, price, quantity, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.BillID, item.ProductName, nullIfEmpty(item.SKU),
		item.Price, item.Quantity, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// GetByRef obtiene una factura por su referencia legible.
func (r *BillRepo) GetByRef(billRef string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_ref = $1`
	var b entity.Bill
	if err := scanBill(r.q.QueryRow(context.Background(), query, billRef), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &b, nil
}

// GetByToken obtiene una factura por su token público.
func (r *BillRepo) GetByToken(publicToken string) (*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE public_token = $1`
	var b entity.Bill
	if err := scanBill(r.q.QueryRow(context.Background(), query, publicToken), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill by token: %w", err)
	}
	return &b, nil
}

// GetItems obtiene las líneas de una factura en orden de inserción.
func (r *BillRepo) GetItems(billID string) ([]*entity.BillItem, error) {
	query := `
		SELECT id, bill_id, product_name, COALESCE(sku, ''), price, quantity, line_total
		FROM bill_items WHERE bill_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer rows.Close()
	var items []*entity.BillItem
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.ProductName, &it.SKU,
			&it.Price, &it.Quantity, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

const billWithCustomerQuery = `
	SELECT b.id, b.bill_ref, b.customer_id, b.subtotal, b.discount_percent, b.discount_amount,
		b.final_amount, b.amount_paid, b.amount_due, b.payment_status, b.due_date, b.public_token,
		b.created_at, b.updated_at, c.name, c.phone
	FROM bills b JOIN customers c ON c.id = b.customer_id`

func collectBillsWithCustomer(rows pgx.Rows) ([]*repository.BillWithCustomer, error) {
	defer rows.Close()
	var list []*repository.BillWithCustomer
	for rows.Next() {
		var bc repository.BillWithCustomer
		b := &bc.Bill
		if err := rows.Scan(
			&b.ID, &b.BillRef, &b.CustomerID, &b.Subtotal, &b.DiscountPercent,
			&b.DiscountAmount, &b.FinalAmount, &b.AmountPaid, &b.AmountDue,
			&b.PaymentStatus, &b.DueDate, &b.PublicToken, &b.CreatedAt, &b.UpdatedAt,
			&bc.CustomerName, &bc.CustomerPhone,
		); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, &bc)
	}
	return list, rows.Err()
}

// List lista todas las facturas con su cliente, las más recientes primero.
func (r *BillRepo) List() ([]*repository.BillWithCustomer, error) {
	rows, err := r.q.Query(context.Background(),
		billWithCustomerQuery+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return collectBillsWithCustomer(rows)
}

// ListByCustomer historial de compras de un cliente, el más reciente primero.
func (r *BillRepo) ListByCustomer(customerID string) ([]*entity.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bills by customer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		if err := scanBill(rows, &b); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ListOverdue facturas PENDING cuya fecha límite ya pasó respecto de asOf.
// Compara solo la fecha: una factura vence al terminar su due_date.
func (r *BillRepo) ListOverdue(asOf time.Time) ([]*repository.BillWithCustomer, error) {
	rows, err := r.q.Query(context.Background(),
		billWithCustomerQuery+` WHERE b.payment_status = $1 AND b.due_date < $2::date
		ORDER BY b.due_date ASC`,
		entity.PaymentStatusPending, asOf.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list overdue bills: %w", err)
	}
	return collectBillsWithCustomer(rows)
}

// UpdatePayment persiste los campos de pago. El resto de la factura es inmutable.
func (r *BillRepo) UpdatePayment(bill *entity.Bill) error {
	query := `
		UPDATE bills
		SET amount_paid = $2, amount_due = $3, payment_status = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		bill.ID, bill.AmountPaid, bill.AmountDue, bill.PaymentStatus, bill.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update bill payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
