// Package model holds the flat entity records served by the API.
// IDs are uuid strings generated at create time; calendar fields that
// the front-end treats as plain dates ("2024-01-20") and clock times
// ("19:00") stay strings, timestamps are time.Time.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsGlutenFree bool            `json:"is_gluten_free"`
	IsSpicy      bool            `json:"is_spicy"`
	Image        string          `json:"image,omitempty"`
}

// CatalogItem is one gallery entry on the public catalog page.
type CatalogItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Locale      string `json:"locale"`
}

// ServiceLine is one billable line on an invoice. TaxPercent is a
// percentage (10 means 10%), not a fraction.
type ServiceLine struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	TaxPercent  decimal.Decimal `json:"tax"`
}

// Adjustment is a named discount or surcharge on an invoice total.
type Adjustment struct {
	Label  string          `json:"label"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// Invoice keeps TotalAmount and BalanceDue derived: they are
// recomputed from Services, Adjustments and PaidAmount on every write
// and never accepted from the client.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	DueDate       string          `json:"due_date"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	TableName     string          `json:"table_name"`
	GuestsCount   int             `json:"guests_count"`
	Notes         string          `json:"notes"`
	Services      []ServiceLine   `json:"services"`
	Adjustments   []Adjustment    `json:"adjustments"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Bill struct {
	ID       string          `json:"id"`
	Vendor   string          `json:"vendor"`
	Category string          `json:"category"`
	BillDate string          `json:"bill_date"`
	DueDate  string          `json:"due_date"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
}

type Purchase struct {
	ID            string          `json:"id"`
	Supplier      string          `json:"supplier"`
	OrderDate     string          `json:"order_date"`
	DeliveryDate  string          `json:"delivery_date"`
	Items         int             `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
}

type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	TotalOrders   int    `json:"total_orders"`
	LastOrderDate string `json:"last_order_date"`
}

type StaffMember struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"`
	Schedule   string          `json:"schedule"`
	Status     string          `json:"status"`
	Avatar     string          `json:"avatar,omitempty"`
	Skills     []string        `json:"skills"`
	Rating     float64         `json:"rating"`
	Experience string          `json:"experience"`
}

// User is an admin back-office account. PasswordHash is bcrypt and
// never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Bio          string    `json:"bio"`
	Role         string    `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	Status       string    `json:"status"`
	PasswordHash string    `json:"-"`
	LastLogin    time.Time `json:"last_login"`
	JoinedAt     time.Time `json:"joined_at"`
}

type Payment struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Refund struct {
	ID               string          `json:"id"`
	PaymentReference string          `json:"payment_reference"`
	CustomerName     string          `json:"customer_name"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           string          `json:"reason"`
	Status           string          `json:"status"`
	RequestDate      string          `json:"request_date"`
	ProcessedDate    string          `json:"processed_date,omitempty"`
}

// Page is editable site copy for one public page.
type Page struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	LastModified string `json:"last_modified"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityEntry is one line of the profile screen's activity log.
type ActivityEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// Settings groups the four admin settings sections. A single record
// per deployment, stored whole.
type Settings struct {
	Restaurant    RestaurantSettings   `json:"restaurant"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Integrations  IntegrationSettings  `json:"integrations"`
}

type RestaurantSettings struct {
	Name          string          `json:"name"`
	Tagline       string          `json:"tagline"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Website       string          `json:"website"`
	Timezone      string          `json:"timezone"`
	Currency      string          `json:"currency"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	OpeningTime   string          `json:"opening_time"`
	ClosingTime   string          `json:"closing_time"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	NewReservations    bool `json:"new_reservations"`
	Cancellations      bool `json:"cancellations"`
	LowInventory       bool `json:"low_inventory"`
	StaffSchedule      bool `json:"staff_schedule"`
	CustomerReviews    bool `json:"customer_reviews"`
	SystemUpdates      bool `json:"system_updates"`
}

type SecuritySettings struct {
	TwoFactorAuth      bool `json:"two_factor_auth"`
	SessionTimeoutMins int  `json:"session_timeout_mins"`
	PasswordExpiryDays int  `json:"password_expiry_days"`
	LoginAttempts      int  `json:"login_attempts"`
	IPRestriction      bool `json:"ip_restriction"`
	AuditLog           bool `json:"audit_log"`
}

type IntegrationSettings struct {
	PaymentProcessor  string `json:"payment_processor"`
	ReservationSystem string `json:"reservation_system"`
	EmailService      string `json:"email_service"`
	SMSService        string `json:"sms_service"`
	AnalyticsEnabled  bool   `json:"analytics_enabled"`
	SocialMediaSync   bool   `json:"social_media_sync"`
}
