package usecase

import (
	"time"

	"teamsynchub/internal/domain/entity"
)

// SeedDataset is written to an empty store on first start. Message times
// are relative to now so the demo conversation always looks recent.
func SeedDataset(now time.Time) *entity.Dataset {
	ago := func(minutes int) time.Time {
		return now.Add(-time.Duration(minutes) * time.Minute)
	}
	user := func(id, name, email string) *entity.User {
		return &entity.User{ID: id, Name: name, Email: email, AvatarURL: entity.PlaceholderAvatar(id)}
	}

	return &entity.Dataset{
		Users: []*entity.User{
			user("u1", "Ali Veli", "ali@buteo.com"),
			user("u2", "Ayşe Fatma", "ayse@buteo.com"),
			user("u3", "Can Yılmaz", "can@buteo.com"),
			user("u4", "Zeynep Kaya", "zeynep@buteo.com"),
		},
		Topics: []*entity.Topic{
			{
				ID:      "t1",
				Name:    "q4-pazarlama-kampanyası",
				Members: []string{"u1", "u2", "u4"},
				Messages: []entity.Message{
					{ID: "m1", UserID: "u1", Text: "Hey Zeynep, yeni kampanya için görseller hazır mı?", Timestamp: ago(10)},
					{ID: "m2", UserID: "u4", Text: "Evet Ali, son revizyonları yapıyorum. Yarın sabah sende olur.", Timestamp: ago(8)},
					{ID: "m3", UserID: "u1", Text: "Harika, teşekkürler!", Timestamp: ago(7)},
					{ID: "m4", UserID: "u2", Text: "Bütçe onayını aldım bu arada, bilginiz olsun.", Timestamp: ago(5)},
					{ID: "m4.5", UserID: "u1", Text: "Süper haber @AyseFatma, teşekkürler!", Timestamp: ago(4)},
				},
			},
			{
				ID:      "t2",
				Name:    "mobil-uygulama-v2",
				Members: []string{"u1", "u3"},
				Messages: []entity.Message{
					{ID: "m5", UserID: "u1", Text: "Can, v2 için backend servisleri hazır mı?", Timestamp: ago(20)},
					{ID: "m6", UserID: "u3", Text: "Login endpoint'i tamam, ürün listeleme üzerinde çalışıyorum. @AliVeli test edebilirsin.", Timestamp: ago(15)},
				},
			},
		},
		SalesRecords: []*entity.SalesRecord{
			{ID: "proj1", CustomerName: "Polimer Sanayi Ltd.", MaterialName: "HDPE Film", Quantity: 5000, Price: 6200, Currency: entity.CurrencyUSD, AssignedTo: "u4", Status: entity.SalesStatusInProgress},
			{ID: "proj2", CustomerName: "ABC Plastik A.Ş.", MaterialName: "PET Granül", Quantity: 2500, Price: 92500, Currency: entity.CurrencyTRY, AssignedTo: "u2", Status: entity.SalesStatusDone},
			{ID: "proj3", CustomerName: "Global Polimerler", MaterialName: "PP Çuval", Quantity: 10000, Price: 10500, Currency: entity.CurrencyEUR, AssignedTo: "u3", Status: entity.SalesStatusInProgress},
			{ID: "proj4", CustomerName: "Teknik Ambalaj", MaterialName: "PVC Levha", Quantity: 1200, Price: 48000, Currency: entity.CurrencyTRY, AssignedTo: "u1", Status: entity.SalesStatusPending},
		},
		Shipments: []*entity.Shipment{
			{ID: "s1", CustomerName: "ABC Plastik A.Ş.", Product: "PET Granül", QuantityKg: 2500, VehiclePlate: "34 ABC 123", Status: entity.ShipmentStatusDelivered, ShipmentDate: "2024-07-28"},
			{ID: "s2", CustomerName: "Polimer Sanayi Ltd.", Product: "HDPE Film", QuantityKg: 5000, VehiclePlate: "34 XYZ 789", Status: entity.ShipmentStatusInTransit, ShipmentDate: "2024-07-29"},
			{ID: "s3", CustomerName: "Teknik Ambalaj", Product: "PVC Levha", QuantityKg: 1200, VehiclePlate: "34 KLM 456", Status: entity.ShipmentStatusInTransit, ShipmentDate: "2024-07-29"},
			{ID: "s4", CustomerName: "Global Polimerler", Product: "PP Çuval", QuantityKg: 10000, VehiclePlate: "34 DEF 567", Status: entity.ShipmentStatusPending, ShipmentDate: "2024-07-30"},
		},
	}
}
