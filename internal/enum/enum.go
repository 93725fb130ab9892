package enum

// Per-entity status constants. Statuses are deliberately not shared
// across entities even where the words coincide; each entity gets its
// own set and its own validator.

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

const (
	MenuCategoryStarters = "starters"
	MenuCategoryMains    = "mains"
	MenuCategoryDesserts = "desserts"
	MenuCategoryDrinks   = "drinks"
)

func ValidMenuCategory(s string) bool {
	switch s {
	case MenuCategoryStarters, MenuCategoryMains, MenuCategoryDesserts, MenuCategoryDrinks:
		return true
	}
	return false
}

const (
	CatalogCategoryDishes   = "dishes"
	CatalogCategoryAmbiance = "ambiance"
	CatalogCategoryEvents   = "events"
)

func ValidCatalogCategory(s string) bool {
	switch s {
	case CatalogCategoryDishes, CatalogCategoryAmbiance, CatalogCategoryEvents:
		return true
	}
	return false
}

const (
	InvoiceStatusPending       = "pending"
	InvoiceStatusPaid          = "paid"
	InvoiceStatusPartiallyPaid = "partially_paid"
	InvoiceStatusCancelled     = "cancelled"
)

func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusPartiallyPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

const (
	AdjustmentDiscount  = "discount"
	AdjustmentSurcharge = "surcharge"
)

func ValidAdjustmentType(s string) bool {
	return s == AdjustmentDiscount || s == AdjustmentSurcharge
}

const (
	BillStatusPaid    = "paid"
	BillStatusUnpaid  = "unpaid"
	BillStatusOverdue = "overdue"
	BillStatusPartial = "partial"
)

func ValidBillStatus(s string) bool {
	switch s {
	case BillStatusPaid, BillStatusUnpaid, BillStatusOverdue, BillStatusPartial:
		return true
	}
	return false
}

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusReceived  = "received"
	PurchaseStatusCancelled = "cancelled"
	PurchaseStatusPartial   = "partial"
)

func ValidPurchaseStatus(s string) bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusReceived, PurchaseStatusCancelled, PurchaseStatusPartial:
		return true
	}
	return false
}

const (
	PurchasePaymentPaid    = "paid"
	PurchasePaymentUnpaid  = "unpaid"
	PurchasePaymentPartial = "partial"
)

func ValidPurchasePaymentStatus(s string) bool {
	switch s {
	case PurchasePaymentPaid, PurchasePaymentUnpaid, PurchasePaymentPartial:
		return true
	}
	return false
}

const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

func ValidSupplierStatus(s string) bool {
	return s == SupplierStatusActive || s == SupplierStatusInactive
}

const (
	StaffStatusActive   = "active"
	StaffStatusOnLeave  = "on_leave"
	StaffStatusInactive = "inactive"
)

func ValidStaffStatus(s string) bool {
	switch s {
	case StaffStatusActive, StaffStatusOnLeave, StaffStatusInactive:
		return true
	}
	return false
}

const (
	DepartmentKitchen    = "kitchen"
	DepartmentService    = "service"
	DepartmentManagement = "management"
)

func ValidDepartment(s string) bool {
	switch s {
	case DepartmentKitchen, DepartmentService, DepartmentManagement:
		return true
	}
	return false
}

const (
	UserRoleAdmin  = "admin"
	UserRoleEditor = "editor"
	UserRoleViewer = "viewer"
)

func ValidUserRole(s string) bool {
	switch s {
	case UserRoleAdmin, UserRoleEditor, UserRoleViewer:
		return true
	}
	return false
}

const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

func ValidUserStatus(s string) bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOnline       = "online"
)

func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodOnline:
		return true
	}
	return false
}

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

const (
	RefundStatusPending   = "pending"
	RefundStatusApproved  = "approved"
	RefundStatusRejected  = "rejected"
	RefundStatusProcessed = "processed"
)

func ValidRefundStatus(s string) bool {
	switch s {
	case RefundStatusPending, RefundStatusApproved, RefundStatusRejected, RefundStatusProcessed:
		return true
	}
	return false
}
