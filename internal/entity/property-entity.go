package entity

import "time"

type PropertyEntity struct {
	ID             string                 `json:"id"`
	PropertyNumber int                    `json:"property_number"`
	PropertyName   string                 `json:"property_name"`
	RoomNumber     *string                `json:"room_number,omitempty"`
	PropertyType   PropertyType           `json:"property_type"`
	Characteristic PropertyCharacteristic `json:"characteristic,omitempty"`
	Status         PropertyStatus         `json:"status"`
	Price          int64                  `json:"price"`
	PriceInclTax   *int64                 `json:"price_incl_tax,omitempty"`
	CompanyName    string                 `json:"company_name"`
	HandlerName    string                 `json:"handler_name"`
	AthomeNumber   *string                `json:"athome_number,omitempty"`

	InfoSource        *string          `json:"info_source,omitempty"`
	TransactionType   *TransactionType `json:"transaction_type,omitempty"`
	ResponsiblePerson *string          `json:"responsible_person,omitempty"`
	KeyLocation       *string          `json:"key_location,omitempty"`
	KeyInfo           *string          `json:"key_info,omitempty"`
	PublicInfo        *string          `json:"public_info,omitempty"`
	IsOccupied        bool             `json:"is_occupied,omitempty"`
	IsVacant          bool             `json:"is_vacant,omitempty"`

	SellerName *string `json:"seller_name,omitempty"`
	BuyerName  *string `json:"buyer_name,omitempty"`

	VendorCompanyName   *string `json:"vendor_company_name,omitempty"`
	VendorContactPerson *string `json:"vendor_contact_person,omitempty"`
	VendorPhone         *string `json:"vendor_phone,omitempty"`

	CreditorCompanyName   *string `json:"creditor_company_name,omitempty"`
	CreditorContactPerson *string `json:"creditor_contact_person,omitempty"`
	CreditorPhone         *string `json:"creditor_phone,omitempty"`

	Memo           *string `json:"memo,omitempty"`
	EstimatedSales *string `json:"estimated_sales,omitempty"`

	ContractDate   *time.Time `json:"contract_date,omitempty"`
	SettlementDate *time.Time `json:"settlement_date,omitempty"`

	IsArchived bool      `json:"is_archived,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	CreatedBy  string    `json:"created_by"`
}

type PropertyType string

const (
	TypeHouse     PropertyType = "House"
	TypeApartment PropertyType = "Apartment"
	TypeLand      PropertyType = "Land"
	TypeOther     PropertyType = "Other"
)

// PropertyStatus is the listing's transaction mode (取引態様).
type PropertyStatus string

const (
	StatusBrokerage    PropertyStatus = "Brokerage"
	StatusDealerOwned  PropertyStatus = "Dealer_Owned"
	StatusCompanyOwned PropertyStatus = "Company_Owned"
	StatusPostContract PropertyStatus = "Post_Contract"
	StatusSaleHalted   PropertyStatus = "Sale_Halted"
)

// PropertyCharacteristic is the seller's reason for sale (売却理由).
type PropertyCharacteristic string

const (
	CharacteristicInheritance PropertyCharacteristic = "Inheritance"
	CharacteristicNormal      PropertyCharacteristic = "Normal"
	CharacteristicDivorce     PropertyCharacteristic = "Divorce"
	CharacteristicBankruptcy  PropertyCharacteristic = "Bankruptcy"
	CharacteristicOther       PropertyCharacteristic = "Other"
)

type TransactionType string

const (
	TransactionSellerSideOwn   TransactionType = "Seller_Side_Own"
	TransactionSellerSideOther TransactionType = "Seller_Side_Other"
	TransactionBuyerSide       TransactionType = "Buyer_Side"
	TransactionBothSides       TransactionType = "Both_Sides"
)

func ValidPropertyType(t string) bool {
	switch PropertyType(t) {
	case TypeHouse, TypeApartment, TypeLand, TypeOther:
		return true
	}
	return false
}

func ValidPropertyStatus(s string) bool {
	switch PropertyStatus(s) {
	case StatusBrokerage, StatusDealerOwned, StatusCompanyOwned, StatusPostContract, StatusSaleHalted:
		return true
	}
	return false
}

func ValidCharacteristic(c string) bool {
	switch PropertyCharacteristic(c) {
	case CharacteristicInheritance, CharacteristicNormal, CharacteristicDivorce, CharacteristicBankruptcy, CharacteristicOther:
		return true
	}
	return false
}
