package service

import (
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// InvoiceTotal computes the invoice total from its service lines and
// adjustments: each line contributes amount plus amount*tax%, each
// adjustment is subtracted (discount) or added (surcharge). The sum is
// rounded to 2 decimal places after accumulation, not per line.
func InvoiceTotal(services []model.ServiceLine, adjustments []model.Adjustment) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		tax := s.Amount.Mul(s.TaxPercent).Div(oneHundred)
		total = total.Add(s.Amount).Add(tax)
	}
	for _, a := range adjustments {
		if a.Type == enum.AdjustmentDiscount {
			total = total.Sub(a.Amount)
		} else {
			total = total.Add(a.Amount)
		}
	}
	return total.Round(2)
}

// BalanceDue is total minus paid. Not clamped: overpayment shows as a
// negative balance.
func BalanceDue(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid).Round(2)
}

// DeriveInvoice fills the derived fields of an invoice in place so
// stored totals can never drift from their inputs.
func DeriveInvoice(inv *model.Invoice) {
	inv.TotalAmount = InvoiceTotal(inv.Services, inv.Adjustments)
	inv.BalanceDue = BalanceDue(inv.TotalAmount, inv.PaidAmount)
}

// ValidateInvoice checks the writable invoice fields. Derived fields
// are not validated here since they are always recomputed.
func ValidateInvoice(inv model.Invoice) FieldErrors {
	errs := FieldErrors{}
	if inv.InvoiceNumber == "" {
		errs["invoice_number"] = "invoice number is required"
	}
	if inv.InvoiceDate == "" {
		errs["invoice_date"] = "invoice date is required"
	}
	if !enum.ValidInvoiceStatus(inv.Status) {
		errs["status"] = "invalid status"
	}
	if inv.GuestsCount < 0 {
		errs["guests_count"] = "guests count must not be negative"
	}
	if inv.PaidAmount.IsNegative() {
		errs["paid_amount"] = "paid amount must not be negative"
	}
	for _, a := range inv.Adjustments {
		if !enum.ValidAdjustmentType(a.Type) {
			errs["adjustments"] = "invalid adjustment type"
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
