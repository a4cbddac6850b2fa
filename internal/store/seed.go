package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Demo credentials for the seeded accounts.
const (
	SeedAdminEmail       = "admin@solar.com"
	SeedAdminPassword    = "admin123"
	SeedCustomerEmail    = "customer@solar.com"
	SeedCustomerPassword = "customer123"
)

// Seed builds the demo dataset used when no snapshot exists yet: two
// accounts, the launch catalog, a handful of open tickets and the demo
// customer's order, payment and tracking history.
func Seed() *Data {
	now := time.Now().UTC()
	daysAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

	return &Data{
		Users: []*User{
			{
				ID:           "1",
				Name:         "Ishika",
				Email:        SeedAdminEmail,
				PasswordHash: mustHash(SeedAdminPassword),
				Role:         RoleAdmin,
				CreatedAt:    time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
			},
			{
				ID:           "2",
				Name:         "Ishaan",
				Email:        SeedCustomerEmail,
				PasswordHash: mustHash(SeedCustomerPassword),
				Role:         RoleCustomer,
				Phone:        "+1 (555) 123-4567",
				Address:      "123 Solar St, Sunny City",
				Plan:         "Premium Solar",
				CreatedAt:    time.Date(2025, 2, 10, 10, 30, 0, 0, time.UTC),
			},
		},
		Products: []*Product{
			{
				ID:            "p1",
				Name:          "Solar Panel 450W Mono",
				Description:   "High efficiency monocrystalline solar panel with 450W output. Perfect for residential installations.",
				Price:         24999,
				DiscountPrice: price(22999),
				Category:      CategoryPanel,
				Rating:        4.7,
				InStock:       true,
				Featured:      true,
				Stock:         45,
				SKU:           "SP-450M-001",
				Sold:          23,
				Specs: map[string]string{
					"Power Output": "450W",
					"Efficiency":   "21.3%",
					"Dimensions":   "1755 x 1038 x 35mm",
					"Weight":       "20.3kg",
					"Warranty":     "25 years",
				},
			},
			{
				ID:          "p2",
				Name:        "Home Battery Storage 10kWh",
				Description: "Efficient home battery storage system to store excess solar energy for use during peak hours or outages.",
				Price:       699999,
				Category:    CategoryBattery,
				Rating:      4.9,
				InStock:     true,
				Featured:    true,
				Stock:       15,
				SKU:         "HB-10KW-001",
				Sold:        8,
				Specs: map[string]string{
					"Capacity":   "10kWh",
					"Peak Power": "7kW",
					"Dimensions": "115 x 75 x 14cm",
					"Weight":     "114kg",
					"Warranty":   "10 years",
				},
			},
			{
				ID:            "p3",
				Name:          "Solar Inverter 6kW",
				Description:   "High-efficiency grid-tied inverter for residential solar installations.",
				Price:         129999,
				DiscountPrice: price(119999),
				Category:      CategoryInverter,
				Rating:        4.6,
				InStock:       true,
				Stock:         30,
				SKU:           "INV-6KW-001",
				Sold:          17,
				Specs: map[string]string{
					"Output":     "6kW",
					"Efficiency": "98.3%",
					"Dimensions": "73 x 50 x 23cm",
					"Weight":     "28kg",
					"Warranty":   "12 years",
				},
			},
			{
				ID:          "p4",
				Name:        "Solar Panel Mounting Kit",
				Description: "Complete mounting kit for roof installation of residential solar panels.",
				Price:       14999,
				Category:    CategoryAccessory,
				Rating:      4.3,
				InStock:     true,
				Stock:       60,
				SKU:         "MNT-KIT-001",
				Sold:        32,
				Specs: map[string]string{
					"Material":          "Aluminum",
					"Compatible Panels": "Up to 20 panels",
					"Warranty":          "10 years",
				},
			},
			{
				ID:            "p5",
				Name:          "Solar Panel 320W Poly",
				Description:   "Cost-effective polycrystalline solar panel for residential use.",
				Price:         17999,
				DiscountPrice: price(15999),
				Category:      CategoryPanel,
				Rating:        4.2,
				InStock:       true,
				Stock:         40,
				SKU:           "SP-320P-001",
				Sold:          25,
				Specs: map[string]string{
					"Power Output": "320W",
					"Efficiency":   "17.6%",
					"Dimensions":   "1640 x 992 x 35mm",
					"Weight":       "18.5kg",
					"Warranty":     "20 years",
				},
			},
		},
		Carts: map[string][]*CartItem{},
		Orders: []*Order{
			{
				ID:          "ord_1652345",
				OrderNumber: "ORD-20250415-A3F1",
				UserID:      "2",
				Items: []CartItem{
					{ProductID: "p1", Quantity: 10},
					{ProductID: "p4", Quantity: 2},
				},
				TotalAmount:       259990,
				Status:            OrderDelivered,
				CreatedAt:         time.Date(2025, 4, 15, 14, 30, 0, 0, time.UTC),
				UpdatedAt:         time.Date(2025, 4, 20, 9, 15, 0, 0, time.UTC),
				ShippingAddress:   "123 Solar St, Sunny City, SC 12345",
				PaymentMethod:     "Credit Card",
				TrackingNumber:    "TRK123456789",
				EstimatedDelivery: "2025-04-25",
				Notes:             "Customer requested installation support.",
			},
			{
				ID:          "ord_1652346",
				OrderNumber: "ORD-20250428-B7C2",
				UserID:      "2",
				Items: []CartItem{
					{ProductID: "p2", Quantity: 1},
				},
				TotalAmount:       699999,
				Status:            OrderShipped,
				CreatedAt:         time.Date(2025, 4, 28, 16, 45, 0, 0, time.UTC),
				UpdatedAt:         time.Date(2025, 4, 29, 11, 30, 0, 0, time.UTC),
				ShippingAddress:   "123 Solar St, Sunny City, SC 12345",
				PaymentMethod:     "Bank Transfer",
				TrackingNumber:    "TRK987654321",
				EstimatedDelivery: "2025-05-05",
			},
			{
				ID:          "ord_1652347",
				OrderNumber: "ORD-20250501-D9E4",
				UserID:      "2",
				Items: []CartItem{
					{ProductID: "p3", Quantity: 1},
					{ProductID: "p5", Quantity: 15},
				},
				TotalAmount:     359984,
				Status:          OrderProcessing,
				CreatedAt:       time.Date(2025, 5, 1, 10, 15, 0, 0, time.UTC),
				UpdatedAt:       time.Date(2025, 5, 1, 13, 45, 0, 0, time.UTC),
				ShippingAddress: "123 Solar St, Sunny City, SC 12345",
				PaymentMethod:   "Credit Card",
			},
		},
		Payments: []*Payment{
			{
				ID:          "201",
				UserID:      "2",
				Amount:      12500,
				Description: "Initial solar panel installation payment",
				Status:      PaymentCompleted,
				Date:        time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          "202",
				UserID:      "2",
				Amount:      1200,
				Description: "Monthly maintenance plan - Q1",
				Status:      PaymentCompleted,
				Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          "203",
				UserID:      "2",
				Amount:      850,
				Description: "System monitoring subscription - Annual",
				Status:      PaymentPending,
				Date:        time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Tracking: []*Tracking{
			{
				OrderID:           "ord_1652345",
				TrackingNumber:    "TRK123456789",
				Carrier:           "Solar Express",
				Status:            TrackingDelivered,
				EstimatedDelivery: "2025-04-25",
				Updates: []TrackingUpdate{
					{
						Date:        time.Date(2025, 4, 16, 9, 0, 0, 0, time.UTC),
						Status:      TrackingPickedUp,
						Location:    "Solar Warehouse, Mumbai",
						Description: "Package picked up by carrier",
					},
					{
						Date:        time.Date(2025, 4, 18, 14, 30, 0, 0, time.UTC),
						Status:      TrackingInTransit,
						Location:    "Regional Hub, Delhi",
						Description: "Package in transit to destination",
					},
					{
						Date:        time.Date(2025, 4, 20, 8, 45, 0, 0, time.UTC),
						Status:      TrackingDelivered,
						Location:    "Sunny City, SC 12345",
						Description: "Package delivered",
					},
				},
			},
			{
				OrderID:           "ord_1652346",
				TrackingNumber:    "TRK987654321",
				Carrier:           "Solar Express",
				Status:            TrackingInTransit,
				EstimatedDelivery: "2025-05-05",
				Updates: []TrackingUpdate{
					{
						Date:        time.Date(2025, 4, 29, 10, 15, 0, 0, time.UTC),
						Status:      TrackingPickedUp,
						Location:    "Solar Warehouse, Mumbai",
						Description: "Package picked up by carrier",
					},
					{
						Date:        time.Date(2025, 4, 30, 16, 20, 0, 0, time.UTC),
						Status:      TrackingInTransit,
						Location:    "Regional Hub, Delhi",
						Description: "Package in transit to destination",
					},
				},
			},
		},
		Tickets: []*Ticket{
			{
				ID:          "101",
				Title:       "Solar Panel Maintenance Required",
				Description: "My solar panels appear to be accumulating debris and need cleaning.",
				Status:      TicketOpen,
				Priority:    PriorityMedium,
				CreatedAt:   daysAgo(3),
				UpdatedAt:   daysAgo(3),
				UserID:      "2",
				Category:    "Maintenance",
			},
			{
				ID:          "102",
				Title:       "Energy Production Lower Than Expected",
				Description: "My system is producing about 30% less energy than projected.",
				Status:      TicketInProgress,
				Priority:    PriorityHigh,
				CreatedAt:   daysAgo(5),
				UpdatedAt:   daysAgo(2),
				UserID:      "2",
				AssignedTo:  "1",
				Category:    "Performance",
			},
			{
				ID:          "103",
				Title:       "Billing Question",
				Description: "I need clarification on my recent invoice - there appear to be unexpected charges.",
				Status:      TicketResolved,
				Priority:    PriorityMedium,
				CreatedAt:   daysAgo(10),
				UpdatedAt:   daysAgo(1),
				UserID:      "2",
				AssignedTo:  "1",
				Category:    "Billing",
			},
			{
				ID:          "104",
				Title:       "App Connection Issues",
				Description: "Having trouble connecting to the monitoring app - shows offline even though system is running.",
				Status:      TicketOpen,
				Priority:    PriorityUrgent,
				CreatedAt:   daysAgo(1),
				UpdatedAt:   daysAgo(1),
				UserID:      "2",
				Category:    "Technical",
			},
			{
				ID:          "105",
				Title:       "System Upgrade Inquiry",
				Description: "Interested in adding battery storage to my existing solar setup. Need consultation.",
				Status:      TicketOpen,
				Priority:    PriorityLow,
				CreatedAt:   daysAgo(2),
				UpdatedAt:   daysAgo(2),
				UserID:      "2",
				Category:    "Sales",
			},
		},
		ChatMessages: map[string][]*ChatMessage{},
		Referrals:    []*Referral{},
		EnergyData: map[string][]EnergyReading{
			"2": {
				{Date: "Jan", Value: 130},
				{Date: "Feb", Value: 150},
				{Date: "Mar", Value: 195},
				{Date: "Apr", Value: 180},
				{Date: "May", Value: 190},
				{Date: "Jun", Value: 245},
				{Date: "Jul", Value: 240},
			},
		},
	}
}

func price(v int64) *int64 { return &v }

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}
