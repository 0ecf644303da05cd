package entities

// Stage gates which form fields are visible and editable.
//
// Domain notes:
//   - Stage N shows every field whose display stage is <= N.
//   - Stages only move forward while the citizen fills the form. They move back
//     on a failed submission (rewind) and on an explicit reset.
//   - StageConfirmation shows the summary, the reCAPTCHA and the submit button.
type Stage int

const (
	StageCPF Stage = iota
	StageName
	StageMobilePhone
	StageLandline
	StageServiceType
	StageNeighborhood
	StageUnit
	StageDate
	StageTimeSlot
	StageConfirmation
)

// Stages lists every stage in order.
var Stages = []Stage{
	StageCPF,
	StageName,
	StageMobilePhone,
	StageLandline,
	StageServiceType,
	StageNeighborhood,
	StageUnit,
	StageDate,
	StageTimeSlot,
	StageConfirmation,
}

var stageNames = map[Stage]string{
	StageCPF:          "cpf",
	StageName:         "nome",
	StageMobilePhone:  "celular",
	StageLandline:     "telefone",
	StageServiceType:  "tipo",
	StageNeighborhood: "bairro",
	StageUnit:         "unidade",
	StageDate:         "data",
	StageTimeSlot:     "horario",
	StageConfirmation: "confirmacao",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "desconhecida"
}

func (s Stage) Valid() bool {
	return s >= StageCPF && s <= StageConfirmation
}

// ParseStage resolves a stage from its name.
func ParseStage(name string) (Stage, bool) {
	for stage, n := range stageNames {
		if n == name {
			return stage, true
		}
	}
	return StageCPF, false
}
