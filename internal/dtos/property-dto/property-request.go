package property_dto

import (
	"time"

	"github.com/thomas0124/estate-portal/internal/entity"
)

// SavePropertyRequest carries a full property record for create and update.
// There is no field-by-field patching: the caller always re-submits the
// whole record and it is validated as a whole. On update the property number
// is ignored; it can never change after creation.
type SavePropertyRequest struct {
	PropertyNumber int     `json:"property_number"`
	PropertyName   string  `json:"property_name"`
	RoomNumber     *string `json:"room_number,omitempty"`
	PropertyType   string  `json:"property_type"`
	Characteristic *string `json:"characteristic,omitempty"`
	Status         string  `json:"status"`
	Price          *int64  `json:"price,omitempty"`
	PriceInclTax   *int64  `json:"price_incl_tax,omitempty"`
	CompanyName    string  `json:"company_name"`
	HandlerName    string  `json:"handler_name"`
	AthomeNumber   *string `json:"athome_number,omitempty"`

	InfoSource        *string `json:"info_source,omitempty"`
	TransactionType   *string `json:"transaction_type,omitempty"`
	ResponsiblePerson *string `json:"responsible_person,omitempty"`
	KeyLocation       *string `json:"key_location,omitempty"`
	KeyInfo           *string `json:"key_info,omitempty"`
	PublicInfo        *string `json:"public_info,omitempty"`
	IsOccupied        bool    `json:"is_occupied,omitempty"`
	IsVacant          bool    `json:"is_vacant,omitempty"`

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
}

type SortField string

const (
	SortByPropertyNumber SortField = "property_number"
	SortByPrice          SortField = "price"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PropertyListFilter combines all optional criteria with logical AND. An
// empty status set applies the default list policy: sale-halted and
// post-contract listings are hidden.
type PropertyListFilter struct {
	SearchQuery     string                          `json:"search_query,omitempty"`
	Types           []entity.PropertyType           `json:"types,omitempty"`
	Statuses        []entity.PropertyStatus         `json:"statuses,omitempty"`
	Handlers        []string                        `json:"handlers,omitempty"`
	Characteristics []entity.PropertyCharacteristic `json:"characteristics,omitempty"`
	SortField       SortField                       `json:"sort_field,omitempty"`
	SortOrder       SortOrder                       `json:"sort_order,omitempty"`
}
