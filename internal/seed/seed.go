// Package seed fills a store with the demo dataset the admin screens
// ship with. Load is idempotent per collection: it replaces whatever
// is there.
package seed

import (
	"time"

	"github.com/lumiere-dining/api/internal/auth"
	"github.com/lumiere-dining/api/internal/enum"
	"github.com/lumiere-dining/api/internal/model"
	"github.com/lumiere-dining/api/internal/service"
	"github.com/lumiere-dining/api/internal/store"
	"github.com/shopspring/decimal"
)

// DefaultPassword is the password every seeded account starts with.
const DefaultPassword = "lumiere2024"

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic("seed: bad decimal " + s)
	}
	return v
}

// Load replaces the store's contents with the demo dataset.
func Load(st *store.Store) error {
	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	st.MenuItems.SetAll(menuItems())
	st.Categories.SetAll(categories())
	st.Catalog.SetAll(catalogItems())
	st.Reservations.SetAll(reservations(now))
	st.Invoices.SetAll(invoices(now))
	st.Bills.SetAll(bills())
	st.Purchases.SetAll(purchases())
	st.Suppliers.SetAll(suppliers())
	st.Staff.SetAll(staff())
	st.Users.SetAll(users(hash, now))
	st.Payments.SetAll(payments(now))
	st.Refunds.SetAll(refunds())
	st.Pages.SetAll(pages())
	st.Messages.SetAll(nil)
	st.Activity.SetAll(nil)
	st.SetSettings(DefaultSettings())
	return nil
}

func menuItems() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:           "1",
			Name:         "Truffle Arancini",
			Description:  "Crispy risotto balls with black truffle, parmesan, and wild mushroom ragù",
			Price:        d("18"),
			Category:     enum.MenuCategoryStarters,
			IsVegetarian: true,
		},
		{
			ID:          "2",
			Name:        "Wagyu Beef Tartare",
			Description: "Hand-cut wagyu beef with quail egg, caviar, and crispy shallots",
			Price:       d("32"),
			Category:    enum.MenuCategoryStarters,
		},
		{
			ID:           "3",
			Name:         "Pan-Seared Halibut",
			Description:  "Atlantic halibut with cauliflower purée, brown butter, and microgreens",
			Price:        d("45"),
			Category:     enum.MenuCategoryMains,
			IsGlutenFree: true,
		},
		{
			ID:           "4",
			Name:         "Dry-Aged Ribeye",
			Description:  "28-day aged ribeye with roasted bone marrow and truffle jus",
			Price:        d("65"),
			Category:     enum.MenuCategoryMains,
			IsGlutenFree: true,
		},
		{
			ID:           "5",
			Name:         "Dark Chocolate Soufflé",
			Description:  "Warm chocolate soufflé with vanilla bean ice cream and gold leaf",
			Price:        d("16"),
			Category:     enum.MenuCategoryDesserts,
			IsVegetarian: true,
		},
		{
			ID:          "6",
			Name:        "Champagne Cocktail",
			Description: "Dom Pérignon with elderflower liqueur and fresh berries",
			Price:       d("28"),
			Category:    enum.MenuCategoryDrinks,
		},
	}
}

func categories() []model.Category {
	return []model.Category{
		{ID: "1", Name: "Starters", Description: "Small plates to open the meal", Locale: "en"},
		{ID: "2", Name: "Mains", Description: "Signature main courses", Locale: "en"},
		{ID: "3", Name: "Desserts", Description: "Sweet finishes", Locale: "en"},
		{ID: "4", Name: "Drinks", Description: "Cocktails, wine and non-alcoholic", Locale: "en"},
	}
}

func catalogItems() []model.CatalogItem {
	return []model.CatalogItem{
		{ID: "1", Category: enum.CatalogCategoryDishes, Title: "Wagyu Beef Tartare", Description: "Hand-cut wagyu with quail egg and caviar"},
		{ID: "2", Category: enum.CatalogCategoryAmbiance, Title: "Dining Room", Description: "Elegant interior with warm lighting"},
		{ID: "3", Category: enum.CatalogCategoryDishes, Title: "Truffle Arancini", Description: "Crispy risotto balls with black truffle"},
		{ID: "4", Category: enum.CatalogCategoryEvents, Title: "Private Dining", Description: "Exclusive dining experience"},
		{ID: "5", Category: enum.CatalogCategoryDishes, Title: "Pan-Seared Halibut", Description: "Atlantic halibut with cauliflower purée"},
		{ID: "6", Category: enum.CatalogCategoryAmbiance, Title: "Wine Cellar", Description: "Curated selection of fine wines"},
		{ID: "7", Category: enum.CatalogCategoryDishes, Title: "Chocolate Soufflé", Description: "Warm chocolate soufflé with gold leaf"},
		{ID: "8", Category: enum.CatalogCategoryEvents, Title: "Chef's Table", Description: "Interactive culinary experience"},
		{ID: "9", Category: enum.CatalogCategoryAmbiance, Title: "Bar Area", Description: "Sophisticated cocktail lounge"},
	}
}

func reservations(now time.Time) []model.Reservation {
	return []model.Reservation{
		{
			ID: "1", Name: "Alexandra Smith", Phone: "(555) 111-2233",
			Email: "alexandra@example.com", Date: "2024-03-22", Time: "19:00",
			Guests: 2, Status: enum.ReservationStatusConfirmed,
			CreatedAt: now.Add(-72 * time.Hour),
		},
		{
			ID: "2", Name: "David Park", Phone: "(555) 222-3344",
			Email: "david.park@example.com", Date: "2024-03-22", Time: "20:30",
			Guests: 4, Status: enum.ReservationStatusPending,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "3", Name: "Maria Gonzalez", Phone: "(555) 333-4455",
			Email: "maria.g@example.com", Date: "2024-03-23", Time: "18:00",
			Guests: 6, Status: enum.ReservationStatusCancelled,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}

func invoices(now time.Time) []model.Invoice {
	list := []model.Invoice{
		{
			ID:            "1",
			InvoiceNumber: "INV-2024-001",
			InvoiceDate:   "2024-03-15",
			DueDate:       "2024-03-29",
			CustomerName:  "Alexandra Smith",
			CustomerPhone: "(555) 111-2233",
			TableName:     "Table 12",
			GuestsCount:   2,
			Services: []model.ServiceLine{
				{Type: "food", Description: "Tasting menu for two", Amount: d("180"), TaxPercent: d("10")},
				{Type: "beverage", Description: "Wine pairing", Amount: d("90"), TaxPercent: d("10")},
			},
			Adjustments: []model.Adjustment{
				{Label: "Loyalty discount", Type: enum.AdjustmentDiscount, Amount: d("20")},
			},
			PaidAmount: d("277"),
			Status:     enum.InvoiceStatusPaid,
			CreatedAt:  now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:            "2",
			InvoiceNumber: "INV-2024-002",
			InvoiceDate:   "2024-03-18",
			DueDate:       "2024-04-01",
			CustomerName:  "David Park",
			CustomerPhone: "(555) 222-3344",
			TableName:     "Private Room",
			GuestsCount:   8,
			Notes:         "Corporate dinner",
			Services: []model.ServiceLine{
				{Type: "food", Description: "Group dinner", Amount: d("640"), TaxPercent: d("10")},
				{Type: "service", Description: "Private room hire", Amount: d("150"), TaxPercent: d("0")},
			},
			Adjustments: []model.Adjustment{
				{Label: "Weekend surcharge", Type: enum.AdjustmentSurcharge, Amount: d("35.50")},
			},
			PaidAmount: d("400"),
			Status:     enum.InvoiceStatusPartiallyPaid,
			CreatedAt:  now.Add(-2 * 24 * time.Hour),
		},
	}
	for i := range list {
		service.DeriveInvoice(&list[i])
	}
	return list
}

func bills() []model.Bill {
	return []model.Bill{
		{ID: "BILL-001", Vendor: "City Utilities", Category: "Utilities", BillDate: "2024-03-01", DueDate: "2024-03-15", Amount: d("1250.00"), Status: enum.BillStatusPaid},
		{ID: "BILL-002", Vendor: "Clean Pro Services", Category: "Maintenance", BillDate: "2024-03-05", DueDate: "2024-03-20", Amount: d("450.00"), Status: enum.BillStatusUnpaid},
		{ID: "BILL-003", Vendor: "Premium Insurance Co", Category: "Insurance", BillDate: "2024-02-15", DueDate: "2024-03-01", Amount: d("2800.00"), Status: enum.BillStatusOverdue},
	}
}

func purchases() []model.Purchase {
	return []model.Purchase{
		{ID: "PO-001", Supplier: "Fresh Farms Ltd", OrderDate: "2024-03-10", DeliveryDate: "2024-03-15", Items: 12, TotalAmount: d("2500.00"), Status: enum.PurchaseStatusReceived, PaymentStatus: enum.PurchasePaymentPaid},
		{ID: "PO-002", Supplier: "Ocean Catch Seafood", OrderDate: "2024-03-14", DeliveryDate: "2024-03-18", Items: 8, TotalAmount: d("1850.00"), Status: enum.PurchaseStatusPending, PaymentStatus: enum.PurchasePaymentUnpaid},
		{ID: "PO-003", Supplier: "Vineyard Select Wines", OrderDate: "2024-03-08", DeliveryDate: "2024-03-12", Items: 24, TotalAmount: d("4200.00"), Status: enum.PurchaseStatusPartial, PaymentStatus: enum.PurchasePaymentPartial},
	}
}

func suppliers() []model.Supplier {
	return []model.Supplier{
		{ID: "1", Name: "Fresh Farms Ltd", ContactPerson: "Tom Hardy", Email: "orders@freshfarms.com", Phone: "(555) 410-1100", Category: "Produce", Status: enum.SupplierStatusActive, TotalOrders: 48, LastOrderDate: "2024-03-10"},
		{ID: "2", Name: "Ocean Catch Seafood", ContactPerson: "Nina Costa", Email: "sales@oceancatch.com", Phone: "(555) 420-2200", Category: "Seafood", Status: enum.SupplierStatusActive, TotalOrders: 32, LastOrderDate: "2024-03-14"},
		{ID: "3", Name: "Vineyard Select Wines", ContactPerson: "Pierre Laurent", Email: "pierre@vineyardselect.com", Phone: "(555) 430-3300", Category: "Beverages", Status: enum.SupplierStatusInactive, TotalOrders: 15, LastOrderDate: "2024-01-20"},
	}
}

func staff() []model.StaffMember {
	return []model.StaffMember{
		{
			ID: "1", Name: "Marcus Dubois", Position: "Executive Chef",
			Department: enum.DepartmentKitchen, Email: "marcus@lumiere.com",
			Phone: "(555) 123-4567", Address: "123 Chef St, NYC",
			Salary: d("120000"), HireDate: "2020-01-15",
			Schedule: "Mon-Sat 2PM-11PM", Status: enum.StaffStatusActive,
			Skills: []string{"French Cuisine", "Molecular Gastronomy", "Team Leadership"},
			Rating: 5, Experience: "25+ years",
		},
		{
			ID: "2", Name: "Isabella Romano", Position: "Pastry Chef",
			Department: enum.DepartmentKitchen, Email: "isabella@lumiere.com",
			Phone: "(555) 234-5678", Address: "456 Sweet Ave, NYC",
			Salary: d("85000"), HireDate: "2021-03-20",
			Schedule: "Tue-Sun 6AM-3PM", Status: enum.StaffStatusActive,
			Skills: []string{"Pastry Arts", "Sugar Work", "Chocolate"},
			Rating: 5, Experience: "15+ years",
		},
		{
			ID: "3", Name: "James Morrison", Position: "General Manager",
			Department: enum.DepartmentManagement, Email: "james@lumiere.com",
			Phone: "(555) 345-6789", Address: "789 Manager Blvd, NYC",
			Salary: d("95000"), HireDate: "2019-11-10",
			Schedule: "Mon-Fri 10AM-8PM", Status: enum.StaffStatusActive,
			Skills: []string{"Operations", "Customer Service", "Staff Management"},
			Rating: 4.8, Experience: "18+ years",
		},
	}
}

func users(passwordHash string, now time.Time) []model.User {
	return []model.User{
		{
			ID: "1", Name: "Marcus Dubois", Email: "marcus@lumiere.com",
			Phone: "(555) 123-4567", Role: enum.UserRoleAdmin,
			Status: enum.UserStatusActive, PasswordHash: passwordHash,
			JoinedAt: now.Add(-400 * 24 * time.Hour),
		},
		{
			ID: "2", Name: "Sarah Chen", Email: "sarah@lumiere.com",
			Phone: "(555) 456-7890", Role: enum.UserRoleEditor,
			Status: enum.UserStatusActive, PasswordHash: passwordHash,
			JoinedAt: now.Add(-200 * 24 * time.Hour),
		},
		{
			ID: "3", Name: "James Morrison", Email: "james@lumiere.com",
			Phone: "(555) 345-6789", Role: enum.UserRoleEditor,
			Status: enum.UserStatusActive, PasswordHash: passwordHash,
			JoinedAt: now.Add(-350 * 24 * time.Hour),
		},
		{
			ID: "4", Name: "Emma Wilson", Email: "emma@lumiere.com",
			Phone: "(555) 567-8901", Role: enum.UserRoleEditor,
			Status: enum.UserStatusInactive, PasswordHash: passwordHash,
			JoinedAt: now.Add(-100 * 24 * time.Hour),
		},
	}
}

func payments(now time.Time) []model.Payment {
	return []model.Payment{
		{ID: "1", InvoiceNumber: "INV-2024-001", CustomerName: "Alexandra Smith", Amount: d("277.00"), Method: enum.PaymentMethodCard, Status: enum.PaymentStatusCompleted, Date: now.Add(-3 * 24 * time.Hour).Format("2006-01-02"), Reference: "TXN-88112", CreatedAt: now.Add(-3 * 24 * time.Hour)},
		{ID: "2", InvoiceNumber: "INV-2024-002", CustomerName: "David Park", Amount: d("400.00"), Method: enum.PaymentMethodBankTransfer, Status: enum.PaymentStatusCompleted, Date: now.Add(-24 * time.Hour).Format("2006-01-02"), Reference: "TXN-88113", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "3", InvoiceNumber: "INV-2024-002", CustomerName: "David Park", Amount: d("150.00"), Method: enum.PaymentMethodOnline, Status: enum.PaymentStatusPending, Date: now.Format("2006-01-02"), Reference: "TXN-88114", CreatedAt: now},
	}
}

func refunds() []model.Refund {
	return []model.Refund{
		{ID: "1", PaymentReference: "TXN-88112", CustomerName: "Alexandra Smith", Amount: d("45.00"), Reason: "Dish sent back", Status: enum.RefundStatusProcessed, RequestDate: "2024-03-17", ProcessedDate: "2024-03-18"},
		{ID: "2", PaymentReference: "TXN-88113", CustomerName: "David Park", Amount: d("150.00"), Reason: "Double charge", Status: enum.RefundStatusPending, RequestDate: "2024-03-19"},
	}
}

func pages() []model.Page {
	return []model.Page{
		{
			ID: "homepage", Name: "Homepage",
			Title:        "Exquisite Culinary Experience",
			Subtitle:     "Where artistry meets flavor in an unforgettable fine dining journey",
			Description:  "Experience the pinnacle of fine dining with our commitment to excellence, innovative cuisine, and unparalleled hospitality.",
			LastModified: "2024-01-15",
		},
		{
			ID: "about", Name: "About Us",
			Title:        "Our Story",
			Subtitle:     "A journey of culinary excellence, passion, and dedication",
			Description:  "Lumière was born from a simple yet profound vision: to create a dining experience that transcends the ordinary and touches the soul. Our journey began over two decades ago when Chef Marcus Dubois decided to bring his passion for French culinary artistry to New York City.",
			LastModified: "2024-01-12",
		},
		{
			ID: "contact", Name: "Contact",
			Title:        "Contact Us",
			Subtitle:     "Get in touch with our team for reservations and inquiries",
			Description:  "Located in the heart of Manhattan, Lumière is easily accessible by subway, taxi, or car. We're here to make your dining experience exceptional from the moment you contact us.",
			LastModified: "2024-01-10",
		},
	}
}

// DefaultSettings is the settings record a fresh deployment starts with.
func DefaultSettings() model.Settings {
	return model.Settings{
		Restaurant: model.RestaurantSettings{
			Name:          "Lumière Restaurant",
			Tagline:       "Where artistry meets flavor",
			Address:       "123 Culinary Ave, Manhattan, NYC 10001",
			Phone:         "(555) 100-2000",
			Email:         "hello@lumiere.com",
			Website:       "https://lumiere.com",
			Timezone:      "America/New_York",
			Currency:      "USD",
			TaxRate:       d("8.875"),
			ServiceCharge: d("0"),
			OpeningTime:   "17:00",
			ClosingTime:   "23:00",
		},
		Notifications: model.NotificationSettings{
			EmailNotifications: true,
			NewReservations:    true,
			Cancellations:      true,
			CustomerReviews:    true,
			SystemUpdates:      true,
		},
		Security: model.SecuritySettings{
			SessionTimeoutMins: 30,
			PasswordExpiryDays: 90,
			LoginAttempts:      5,
			AuditLog:           true,
		},
		Integrations: model.IntegrationSettings{
			PaymentProcessor:  "stripe",
			ReservationSystem: "internal",
			EmailService:      "sendgrid",
			SMSService:        "twilio",
			AnalyticsEnabled:  true,
		},
	}
}
