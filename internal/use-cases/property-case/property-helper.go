package property_case

import (
	"sort"
	"strconv"
	"strings"
	"time"

	property_dto "github.com/thomas0124/estate-portal/internal/dtos/property-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
)

func propertyFromRequest(req *property_dto.SavePropertyRequest) *entity.PropertyEntity {
	property := &entity.PropertyEntity{
		PropertyName: strings.TrimSpace(req.PropertyName),
		RoomNumber:   req.RoomNumber,
		PropertyType: entity.PropertyType(req.PropertyType),
		Status:       entity.PropertyStatus(req.Status),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		HandlerName:  strings.TrimSpace(req.HandlerName),
		AthomeNumber: req.AthomeNumber,

		InfoSource:        req.InfoSource,
		ResponsiblePerson: req.ResponsiblePerson,
		KeyLocation:       req.KeyLocation,
		KeyInfo:           req.KeyInfo,
		PublicInfo:        req.PublicInfo,
		IsOccupied:        req.IsOccupied,
		IsVacant:          req.IsVacant,

		SellerName: req.SellerName,
		BuyerName:  req.BuyerName,

		VendorCompanyName:   req.VendorCompanyName,
		VendorContactPerson: req.VendorContactPerson,
		VendorPhone:         req.VendorPhone,

		CreditorCompanyName:   req.CreditorCompanyName,
		CreditorContactPerson: req.CreditorContactPerson,
		CreditorPhone:         req.CreditorPhone,

		Memo:           req.Memo,
		EstimatedSales: req.EstimatedSales,

		ContractDate:   req.ContractDate,
		SettlementDate: req.SettlementDate,
	}

	if req.Price != nil {
		property.Price = *req.Price
	}
	property.PriceInclTax = req.PriceInclTax

	if req.Characteristic != nil {
		property.Characteristic = entity.PropertyCharacteristic(*req.Characteristic)
	}
	if req.TransactionType != nil {
		t := entity.TransactionType(*req.TransactionType)
		property.TransactionType = &t
	}

	return property
}

// ApplySyncedPrice returns a copy of the property carrying the fetched price.
func ApplySyncedPrice(property entity.PropertyEntity, newPrice int64) entity.PropertyEntity {
	property.Price = newPrice
	property.UpdatedAt = time.Now()
	return property
}

// FilterProperties applies every criterion of the filter with logical AND. A
// nil or empty status set falls back to the default list policy: sale-halted
// and post-contract records stay hidden.
func FilterProperties(all []entity.PropertyEntity, filter *property_dto.PropertyListFilter) []entity.PropertyEntity {
	out := make([]entity.PropertyEntity, 0, len(all))

	var query string
	if filter != nil {
		query = strings.ToLower(strings.TrimSpace(filter.SearchQuery))
	}

	for _, p := range all {
		if query != "" && !matchesQuery(&p, query) {
			continue
		}

		if filter == nil || len(filter.Statuses) == 0 {
			if p.Status == entity.StatusSaleHalted || p.Status == entity.StatusPostContract {
				continue
			}
		} else if !containsStatus(filter.Statuses, p.Status) {
			continue
		}

		if filter != nil {
			if len(filter.Types) > 0 && !containsType(filter.Types, p.PropertyType) {
				continue
			}
			if len(filter.Handlers) > 0 && !containsString(filter.Handlers, p.HandlerName) {
				continue
			}
			if len(filter.Characteristics) > 0 && !containsCharacteristic(filter.Characteristics, p.Characteristic) {
				continue
			}
		}

		out = append(out, p)
	}

	return out
}

func matchesQuery(p *entity.PropertyEntity, query string) bool {
	if strings.Contains(strings.ToLower(p.PropertyName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.CompanyName), query) {
		return true
	}
	return strings.Contains(strconv.Itoa(p.PropertyNumber), query)
}

// SortProperties orders the list in place. The sort is stable, so records
// comparing equal keep their insertion order. An empty field leaves the list
// untouched.
func SortProperties(list []entity.PropertyEntity, field property_dto.SortField, order property_dto.SortOrder) {
	if field == "" {
		return
	}

	desc := order == property_dto.SortDesc
	sort.SliceStable(list, func(i, j int) bool {
		var less bool
		switch field {
		case property_dto.SortByPrice:
			less = list[i].Price < list[j].Price
		default:
			less = list[i].PropertyNumber < list[j].PropertyNumber
		}
		if desc {
			return !less && !equalKey(&list[i], &list[j], field)
		}
		return less
	})
}

func equalKey(a, b *entity.PropertyEntity, field property_dto.SortField) bool {
	if field == property_dto.SortByPrice {
		return a.Price == b.Price
	}
	return a.PropertyNumber == b.PropertyNumber
}

func containsStatus(set []entity.PropertyStatus, s entity.PropertyStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsType(set []entity.PropertyType, t entity.PropertyType) bool {
	for _, v := range set {
		if v == t {
			return true
		}
	}
	return false
}

func containsCharacteristic(set []entity.PropertyCharacteristic, c entity.PropertyCharacteristic) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
