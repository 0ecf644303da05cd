package entities

// Field identifies one input of the scheduling form. Values are the wire keys
// used by the presentation layer and by the scheduling API.
type Field string

const (
	FieldCPF          Field = "cpf"
	FieldName         Field = "nome"
	FieldMobilePhone  Field = "celular"
	FieldLandline     Field = "telefone"
	FieldServiceType  Field = "tipo"
	FieldNeighborhood Field = "bairro"
	FieldUnit         Field = "unidade"
	FieldDate         Field = "data"
	FieldTimeSlot     Field = "horario"
)

// Fields lists the form inputs in display order.
var Fields = []Field{
	FieldCPF,
	FieldName,
	FieldMobilePhone,
	FieldLandline,
	FieldServiceType,
	FieldNeighborhood,
	FieldUnit,
	FieldDate,
	FieldTimeSlot,
}

var fieldLabels = map[Field]string{
	FieldCPF:          "CPF",
	FieldName:         "Nome Completo",
	FieldMobilePhone:  "Celular",
	FieldLandline:     "Telefone Fixo",
	FieldServiceType:  "Tipo de Atendimento",
	FieldNeighborhood: "Bairro de Moradia",
	FieldUnit:         "Unidade",
	FieldDate:         "Data",
	FieldTimeSlot:     "Horário",
}

// unlockStages maps each field to the stage unlocked once it holds a valid value.
var unlockStages = map[Field]Stage{
	FieldCPF:          StageName,
	FieldName:         StageMobilePhone,
	FieldMobilePhone:  StageLandline,
	FieldLandline:     StageServiceType,
	FieldServiceType:  StageNeighborhood,
	FieldNeighborhood: StageUnit,
	FieldUnit:         StageDate,
	FieldDate:         StageTimeSlot,
	FieldTimeSlot:     StageConfirmation,
}

// ParseField resolves a wire key into a Field.
func ParseField(key string) (Field, bool) {
	f := Field(key)
	_, ok := unlockStages[f]
	return f, ok
}

func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// UnlockStage is the stage reached when the field is accepted.
func (f Field) UnlockStage() Stage {
	return unlockStages[f]
}

// DisplayStage is the first stage at which the field is shown.
func (f Field) DisplayStage() Stage {
	return unlockStages[f] - 1
}

// FormData holds the raw values typed or picked by the citizen. An empty string
// means the field is unset.
type FormData struct {
	CPF          string `json:"cpf"`
	Name         string `json:"nome"`
	MobilePhone  string `json:"celular"`
	Landline     string `json:"telefone"`
	ServiceType  string `json:"tipo"`
	Neighborhood string `json:"bairro"`
	Unit         string `json:"unidade"`
	Date         string `json:"data"`
	TimeSlot     string `json:"horario"`
}

func (d FormData) Get(f Field) string {
	switch f {
	case FieldCPF:
		return d.CPF
	case FieldName:
		return d.Name
	case FieldMobilePhone:
		return d.MobilePhone
	case FieldLandline:
		return d.Landline
	case FieldServiceType:
		return d.ServiceType
	case FieldNeighborhood:
		return d.Neighborhood
	case FieldUnit:
		return d.Unit
	case FieldDate:
		return d.Date
	case FieldTimeSlot:
		return d.TimeSlot
	}
	return ""
}

func (d *FormData) Set(f Field, value string) {
	switch f {
	case FieldCPF:
		d.CPF = value
	case FieldName:
		d.Name = value
	case FieldMobilePhone:
		d.MobilePhone = value
	case FieldLandline:
		d.Landline = value
	case FieldServiceType:
		d.ServiceType = value
	case FieldNeighborhood:
		d.Neighborhood = value
	case FieldUnit:
		d.Unit = value
	case FieldDate:
		d.Date = value
	case FieldTimeSlot:
		d.TimeSlot = value
	}
}
