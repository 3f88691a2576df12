package state

import (
	"time"

	"github.com/thomas0124/estate-portal/internal/entity"
)

// Built-in demo dataset used on first run, before anything has been
// persisted. IDs are fixed so the fixtures are stable across restarts.

const seedUserID = "user-admin"

func strPtr(s string) *string { return &s }

func seedHandlers() []entity.HandlerEntity {
	return []entity.HandlerEntity{
		{ID: "handler-1", Name: "田中", Color: "#a7f3d0"},
		{ID: "handler-2", Name: "佐藤", Color: "#bfdbfe"},
		{ID: "handler-3", Name: "鈴木", Color: "#fde68a"},
		{ID: "handler-4", Name: "高橋", Color: "#fecaca"},
	}
}

func seedBuildingTypes() []entity.BuildingTypeEntity {
	return []entity.BuildingTypeEntity{
		{ID: "building-type-1", Name: "戸建て", Icon: "🏠"},
		{ID: "building-type-2", Name: "マンション", Icon: "🏢"},
		{ID: "building-type-3", Name: "土地", Icon: "🌳"},
		{ID: "building-type-4", Name: "その他", Icon: "📦"},
	}
}

func seedProperties() []entity.PropertyEntity {
	now := time.Now()
	contract := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 14)
	settlement := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 9)

	return []entity.PropertyEntity{
		{
			ID:             "property-1",
			PropertyNumber: 1001,
			PropertyName:   "青葉台3丁目戸建て",
			PropertyType:   entity.TypeHouse,
			Characteristic: entity.CharacteristicInheritance,
			Status:         entity.StatusBrokerage,
			Price:          32_800_000,
			CompanyName:    "株式会社アオバ不動産",
			HandlerName:    "田中",
			AthomeNumber:   strPtr("AH-1001234"),
			CreatedAt:      now.AddDate(0, -3, 0),
			UpdatedAt:      now.AddDate(0, -1, 0),
			CreatedBy:      seedUserID,
		},
		{
			ID:             "property-2",
			PropertyNumber: 1002,
			PropertyName:   "パークサイド中央 502号室",
			RoomNumber:     strPtr("502"),
			PropertyType:   entity.TypeApartment,
			Characteristic: entity.CharacteristicNormal,
			Status:         entity.StatusDealerOwned,
			Price:          21_500_000,
			CompanyName:    "中央ハウジング株式会社",
			HandlerName:    "佐藤",
			CreatedAt:      now.AddDate(0, -2, -10),
			UpdatedAt:      now.AddDate(0, -2, 0),
			CreatedBy:      seedUserID,
		},
		{
			ID:             "property-3",
			PropertyNumber: 1003,
			PropertyName:   "桜丘町売地 120坪",
			PropertyType:   entity.TypeLand,
			Characteristic: entity.CharacteristicDivorce,
			Status:         entity.StatusCompanyOwned,
			Price:          48_000_000,
			CompanyName:    "桜丘エステート株式会社",
			HandlerName:    "鈴木",
			CreatedAt:      now.AddDate(0, -2, 0),
			UpdatedAt:      now.AddDate(0, -1, -5),
			CreatedBy:      seedUserID,
		},
		{
			ID:             "property-4",
			PropertyNumber: 1004,
			PropertyName:   "緑が丘1丁目中古戸建て",
			PropertyType:   entity.TypeHouse,
			Characteristic: entity.CharacteristicNormal,
			Status:         entity.StatusPostContract,
			Price:          27_300_000,
			CompanyName:    "株式会社ミドリホーム",
			HandlerName:    "田中",
			SellerName:     strPtr("山本一郎"),
			BuyerName:      strPtr("小林花子"),
			EstimatedSales: strPtr("87/87"),
			ContractDate:   &contract,
			SettlementDate: &settlement,
			CreatedAt:      now.AddDate(0, -4, 0),
			UpdatedAt:      now.AddDate(0, 0, -7),
			CreatedBy:      seedUserID,
		},
		{
			ID:             "property-5",
			PropertyNumber: 1005,
			PropertyName:   "旭町2丁目マンション用地",
			PropertyType:   entity.TypeLand,
			Characteristic: entity.CharacteristicBankruptcy,
			Status:         entity.StatusSaleHalted,
			Price:          65_000_000,
			CompanyName:    "旭都市開発株式会社",
			HandlerName:    "高橋",
			CreatedAt:      now.AddDate(0, -5, 0),
			UpdatedAt:      now.AddDate(0, -3, 0),
			CreatedBy:      seedUserID,
		},
	}
}

// seedTasks materializes a checklist for every seeded post-contract
// property, the same shape the lifecycle sync produces at runtime.
func seedTasks(properties []entity.PropertyEntity, handlers []entity.HandlerEntity) []entity.PropertyTaskEntity {
	colorByName := make(map[string]string, len(handlers))
	for _, h := range handlers {
		colorByName[h.Name] = h.Color
	}

	var tasks []entity.PropertyTaskEntity
	for _, p := range properties {
		if p.Status != entity.StatusPostContract {
			continue
		}

		color, ok := colorByName[p.HandlerName]
		if !ok {
			color = "#e5e7eb"
		}

		contract := p.CreatedAt
		if p.ContractDate != nil {
			contract = *p.ContractDate
		}
		settlement := p.UpdatedAt
		if p.SettlementDate != nil {
			settlement = *p.SettlementDate
		}

		estimated := "0/0"
		if p.EstimatedSales != nil {
			estimated = *p.EstimatedSales
		}

		tasks = append(tasks, entity.PropertyTaskEntity{
			ID:             "task-seed-" + p.ID,
			PropertyID:     p.ID,
			PropertyNumber: p.PropertyNumber,
			PropertyName:   p.PropertyName,
			CompanyName:    p.CompanyName,
			HandlerName:    p.HandlerName,
			HandlerColor:   color,
			ContractDate:   contract,
			SettlementDate: settlement,
			Price:          p.Price,
			EstimatedSales: estimated,
			SellerName:     p.SellerName,
			BuyerName:      p.BuyerName,

			Reform:               entity.TaskDetail[entity.TaskStatus]{Status: entity.TaskComplete},
			LoanProcedure:        entity.TaskDetail[entity.LoanProcedureStatus]{Status: entity.LoanFormalApplied},
			Survey:               entity.TaskDetail[entity.TaskStatus]{Status: entity.TaskNotRequired},
			Demolition:           entity.TaskDetail[entity.TaskStatus]{Status: entity.TaskInProgress},
			MortgageCancellation: entity.TaskDetail[entity.MortgageCancellationStatus]{Status: entity.MortgageInProgress},
			Registration:         entity.TaskDetail[entity.RegistrationStatus]{Status: entity.RegistrationInProgress},
			PostProcessing:       entity.TaskDetail[entity.PostProcessingStatus]{Status: entity.PostProcessingInProgress},

			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return tasks
}
