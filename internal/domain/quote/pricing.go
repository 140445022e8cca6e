package quote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Service labels as printed on the exported document.
const (
	ServiceConsulting             = "Consultoria em Infraestrutura / Redes / Melhorias e Suporte"
	ServiceWirelessImplementation = "Implementação ou Melhoria de Rede Wireless"
	ServiceWirelessSurvey         = "Wireless Survey"
	ServiceNetworkDesign          = "Design de Rede (Wireless/Cabeada/Híbrida)"
	ServiceIndustrialManagement   = "Gestão Industrial"
	ServiceTraining               = "Cursos e Treinamentos"
	ServiceEquipmentSale          = "Venda de Equipamentos"
)

// Fixed price list. None of these are configurable.
var (
	consultingHourRate = decimal.NewFromInt(200)

	implementationBaseFee  = decimal.NewFromInt(2280)
	implementationHourRate = decimal.NewFromInt(220)

	surveyBaseFee      = decimal.NewFromInt(3000)
	surveyPerFloorFee  = decimal.NewFromInt(1000)
	surveyFlatFloorFee = decimal.NewFromInt(20000)

	designBaseFee  = decimal.NewFromInt(2500)
	designHourRate = decimal.NewFromInt(200)
)

// surveyFlatThreshold is the last floor count still billed per floor; above
// it the flat fee applies regardless of the exact count.
const surveyFlatThreshold = 10

// AreaBand is the per-floor area band of a wireless survey. The band cost is
// applied once per floor.
type AreaBand string

const (
	AreaBand50To200  AreaBand = "50–200 m²"
	AreaBand200To300 AreaBand = "200–300 m²"
	AreaBand300To500 AreaBand = "300–500 m²"
	AreaBandOver600  AreaBand = "Acima de 600 m²"
)

var areaBandCosts = map[AreaBand]decimal.Decimal{
	AreaBand50To200:  decimal.NewFromInt(2000),
	AreaBand200To300: decimal.NewFromInt(3500),
	AreaBand300To500: decimal.NewFromInt(5000),
	AreaBandOver600:  decimal.NewFromInt(10000),
}

// AreaBands lists the survey area bands in menu order.
func AreaBands() []AreaBand {
	return []AreaBand{AreaBand50To200, AreaBand200To300, AreaBand300To500, AreaBandOver600}
}

// NetworkType tags a network design quote. It is metadata only and never
// changes the price.
type NetworkType string

const (
	NetworkWireless NetworkType = "Wireless"
	NetworkWired    NetworkType = "Cabeada"
	NetworkHybrid   NetworkType = "Híbrida"
)

// NetworkTypes lists the network design types in menu order.
func NetworkTypes() []NetworkType {
	return []NetworkType{NetworkWireless, NetworkWired, NetworkHybrid}
}

type employeeBand struct {
	min, max int
	price    decimal.Decimal
}

var industrialBands = []employeeBand{
	{1, 100, decimal.NewFromInt(4899)},
	{101, 200, decimal.NewFromInt(6899)},
	{201, 1 << 30, decimal.NewFromInt(8899)},
}

// TrainingCourses is the fixed course catalog.
var TrainingCourses = []string{
	"Curso de gerenciamento de rede interna",
	"Curso de gestão de redes Wireless e identificação de problemas",
	"Consulte engenharia",
}

// EquipmentOptions lists the equipment a consulting client may flag interest
// in. Informational only.
var EquipmentOptions = []string{
	"Access Points",
	"Computadores / Laptops Lenovo",
	"Servidores",
	"Câmeras de segurança",
}

// IndustrialServiceOptions lists the industrial management services. The
// selection is informational only and never changes the band price.
var IndustrialServiceOptions = []string{
	"Gestão de estoques e PCP",
	"Otimização de processos",
	"Redução de custos",
	"Supply Chain e Vendas",
	"Criação de dashboard e indicadores",
	"Treinamentos (IE & ESG)",
}

// ValidationError reports invalid user input. It blocks the action that
// carried the input and is always recoverable by correction.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Msg }

func invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }

// PricingInput is one service category's parameter set. Each category
// carries its own struct and pricing rule; dispatch happens on the concrete
// type, never on the display label.
type PricingInput interface {
	Validate() error
	price() LineItem
}

// NewLineItem validates in and, when valid, prices it into a LineItem. This
// is the only way a line item is created.
func NewLineItem(in PricingInput) (LineItem, error) {
	if err := in.Validate(); err != nil {
		return LineItem{}, err
	}
	return in.price(), nil
}

// ConsultingParams prices infrastructure/network consulting by the hour.
type ConsultingParams struct {
	Summary        string
	Hours          int
	WantsEquipment bool
	Equipment      []string
}

func (p ConsultingParams) Validate() error {
	if strings.TrimSpace(p.Summary) == "" {
		return invalid("summary", "is required")
	}
	if p.Hours < 1 {
		return invalid("hours", "must be at least 1")
	}
	return nil
}

func (p ConsultingParams) price() LineItem {
	subtotal := decimal.NewFromInt(int64(p.Hours)).Mul(consultingHourRate)
	details := fmt.Sprintf("Horas: %d × %s", p.Hours, FormatBRL(consultingHourRate))
	if p.WantsEquipment {
		eq := "(não especificado)"
		if len(p.Equipment) > 0 {
			eq = strings.Join(p.Equipment, ", ")
		}
		details += " | Interesse em equipamentos: " + eq
	}
	return LineItem{
		Service:     ServiceConsulting,
		Description: strings.TrimSpace(p.Summary),
		Details:     details,
		Subtotal:    subtotal,
	}
}

// WirelessImplementationParams prices a wireless rollout or improvement: a
// fixed initial analysis plus additional hours.
type WirelessImplementationParams struct {
	Summary         string
	AdditionalHours int
}

func (p WirelessImplementationParams) Validate() error {
	if strings.TrimSpace(p.Summary) == "" {
		return invalid("summary", "is required")
	}
	if p.AdditionalHours < 0 {
		return invalid("additional_hours", "must not be negative")
	}
	return nil
}

func (p WirelessImplementationParams) price() LineItem {
	extra := decimal.NewFromInt(int64(p.AdditionalHours)).Mul(implementationHourRate)
	details := fmt.Sprintf("Análise inicial %s | Horas adic.: %d × %s | Transporte separado",
		FormatBRL(implementationBaseFee), p.AdditionalHours, FormatBRL(implementationHourRate))
	return LineItem{
		Service:     ServiceWirelessImplementation,
		Description: strings.TrimSpace(p.Summary),
		Details:     details,
		Subtotal:    implementationBaseFee.Add(extra),
	}
}

// WirelessSurveyParams prices a site survey: a fixed base, a per-floor fee
// (flat above ten floors) and the selected area band applied per floor.
type WirelessSurveyParams struct {
	Summary string
	Floors  int
	Band    AreaBand
}

func (p WirelessSurveyParams) Validate() error {
	if strings.TrimSpace(p.Summary) == "" {
		return invalid("summary", "is required")
	}
	if p.Floors < 1 {
		return invalid("floors", "must be at least 1")
	}
	if _, ok := areaBandCosts[p.Band]; !ok {
		return invalid("area_band", "is unknown")
	}
	return nil
}

func (p WirelessSurveyParams) price() LineItem {
	floors := decimal.NewFromInt(int64(p.Floors))
	areaCost := areaBandCosts[p.Band].Mul(floors)

	var floorCost decimal.Decimal
	var floorDetail string
	if p.Floors > surveyFlatThreshold {
		floorCost = surveyFlatFloorFee
		floorDetail = fmt.Sprintf("Andares: %d (faixa >10) = %s", p.Floors, FormatBRL(floorCost))
	} else {
		floorCost = surveyPerFloorFee.Mul(floors)
		floorDetail = fmt.Sprintf("Andares: %d × %s = %s", p.Floors, FormatBRL(surveyPerFloorFee), FormatBRL(floorCost))
	}

	details := strings.Join([]string{
		"Análise inicial " + FormatBRL(surveyBaseFee),
		floorDetail,
		fmt.Sprintf("Metragem: %s × %d = %s", p.Band, p.Floors, FormatBRL(areaCost)),
	}, " | ")

	return LineItem{
		Service:     ServiceWirelessSurvey,
		Description: strings.TrimSpace(p.Summary),
		Details:     details,
		Subtotal:    surveyBaseFee.Add(floorCost).Add(areaCost),
	}
}

// NetworkDesignParams prices a network design project: fixed analysis with
// report plus project hours. The network type tags the service label.
type NetworkDesignParams struct {
	Description string
	Hours       int
	Type        NetworkType
}

func (p NetworkDesignParams) Validate() error {
	if strings.TrimSpace(p.Description) == "" {
		return invalid("description", "is required")
	}
	if p.Hours < 1 {
		return invalid("hours", "must be at least 1")
	}
	switch p.Type {
	case NetworkWireless, NetworkWired, NetworkHybrid:
		return nil
	}
	return invalid("network_type", "is unknown")
}

func (p NetworkDesignParams) price() LineItem {
	hours := decimal.NewFromInt(int64(p.Hours)).Mul(designHourRate)
	details := fmt.Sprintf("Tipo: %s | Análise inicial %s | Horas: %d × %s",
		p.Type, FormatBRL(designBaseFee), p.Hours, FormatBRL(designHourRate))
	return LineItem{
		Service:     ServiceNetworkDesign + " — " + string(p.Type),
		Description: strings.TrimSpace(p.Description),
		Details:     details,
		Subtotal:    designBaseFee.Add(hours),
	}
}

// IndustrialManagementParams prices industrial management consulting by the
// employee-count band.
type IndustrialManagementParams struct {
	Summary   string
	Employees int
	Services  []string
}

func (p IndustrialManagementParams) Validate() error {
	if strings.TrimSpace(p.Summary) == "" {
		return invalid("summary", "is required")
	}
	if p.Employees < 1 {
		return invalid("employees", "must be at least 1")
	}
	return nil
}

func (p IndustrialManagementParams) price() LineItem {
	svcs := "(não especificado)"
	if len(p.Services) > 0 {
		svcs = strings.Join(p.Services, ", ")
	}
	return LineItem{
		Service:     ServiceIndustrialManagement,
		Description: strings.TrimSpace(p.Summary),
		Details:     fmt.Sprintf("Serviços: %s | Funcionários: %d", svcs, p.Employees),
		Subtotal:    industrialPrice(p.Employees),
	}
}

func industrialPrice(employees int) decimal.Decimal {
	for _, b := range industrialBands {
		if employees >= b.min && employees <= b.max {
			return b.price
		}
	}
	return industrialBands[len(industrialBands)-1].price
}

// TrainingParams covers the course catalog. Courses are always quoted on
// request, so the subtotal is zero and the notes are optional.
type TrainingParams struct {
	Course string
	Notes  string
}

func (p TrainingParams) Validate() error {
	for _, c := range TrainingCourses {
		if p.Course == c {
			return nil
		}
	}
	return invalid("course", "is unknown")
}

func (p TrainingParams) price() LineItem {
	return LineItem{
		Service:     ServiceTraining,
		Description: strings.TrimSpace(p.Notes),
		Details:     fmt.Sprintf("Curso: %s | Preço: sob consulta", p.Course),
		Subtotal:    decimal.Zero,
	}
}

// EquipmentSaleParams adds the fixed reference-only equipment sale entry.
type EquipmentSaleParams struct{}

func (EquipmentSaleParams) Validate() error { return nil }

func (EquipmentSaleParams) price() LineItem {
	return LineItem{
		Service:     ServiceEquipmentSale,
		Description: "Venda de equipamento — anexar orçamento parceiro Lenovo.",
		Details:     "Item sem valor neste documento (apenas referência).",
		Subtotal:    decimal.Zero,
	}
}
