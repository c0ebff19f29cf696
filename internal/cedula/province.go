package cedula

const (
	minRegion    = 1
	maxRegion    = 24
	abroadRegion = 30
)

var provinces = map[int]string{
	1:  "Azuay",
	2:  "Bolívar",
	3:  "Cañar",
	4:  "Carchi",
	5:  "Cotopaxi",
	6:  "Chimborazo",
	7:  "El Oro",
	8:  "Esmeraldas",
	9:  "Guayas",
	10: "Imbabura",
	11: "Loja",
	12: "Los Ríos",
	13: "Manabí",
	14: "Morona Santiago",
	15: "Napo",
	16: "Pastaza",
	17: "Pichincha",
	18: "Tungurahua",
	19: "Zamora Chinchipe",
	20: "Galápagos",
	21: "Sucumbíos",
	22: "Orellana",
	23: "Santo Domingo de los Tsáchilas",
	24: "Santa Elena",
	30: "Ecuatorianos en el exterior",
}

// Province returns the province name for a region code.
func Province(code int) (string, bool) {
	name, ok := provinces[code]
	return name, ok
}

// ProvinceOf returns the province of a valid cédula. It reports false when
// the number does not pass [Explain].
func ProvinceOf(candidate string) (string, bool) {
	if Explain(candidate) != nil {
		return "", false
	}

	return Province(digit(candidate[0])*10 + digit(candidate[1]))
}
