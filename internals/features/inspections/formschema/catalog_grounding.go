package formschema

// Resistance measurement fields averaged into RG, in form order.
var GroundingResistanceFields = []string{
	"rPataTorre",
	"rCerramiento",
	"rPorton",
	"rPararrayos",
	"rBarraSPT",
	"rEscalerilla1",
	"rEscalerilla2",
}

// GroundingSchema is the grounding-system test. Each section reads from
// data.<sectionId>; photos are uploaded with the bare field id as type.
func GroundingSchema() FormSchema {
	return FormSchema{
		Type: Grounding,
		Sections: []Section{
			{
				ID: "datos", Title: "Datos del Sitio", Icon: "📋", Kind: KindForm, Source: "datos", Extra: true,
				Fields: []Field{
					{ID: "proveedor", Label: "Proveedor", Type: FieldText},
					{ID: "tipoVisita", Label: "Tipo de visita", Type: FieldText},
					{ID: "idSitio", Label: "ID Sitio", Type: FieldText},
					{ID: "nombreSitio", Label: "Nombre del sitio", Type: FieldText},
					{ID: "direccion", Label: "Dirección", Type: FieldText},
					{ID: "tipoSitio", Label: "Tipo de sitio", Type: FieldText},
					{ID: "tipoEstructura", Label: "Tipo de estructura", Type: FieldText},
					{ID: "alturaMts", Label: "Altura (m)", Type: FieldNumber},
					{ID: "latitud", Label: "Latitud", Type: FieldText},
					{ID: "longitud", Label: "Longitud", Type: FieldText},
					{ID: "fechaInicio", Label: "Fecha de inicio", Type: FieldText},
					{ID: "fechaTermino", Label: "Fecha de término", Type: FieldText},
				},
			},
			{
				ID: "condiciones", Title: "Condiciones del Terreno", Icon: "🌦️", Kind: KindForm, Source: "condiciones", Extra: true,
				Fields: []Field{
					{ID: "estadoTerreno", Label: "Estado del terreno", Type: FieldText},
					{ID: "tipoTerreno", Label: "Tipo de terreno", Type: FieldText},
					{ID: "ultimoDiaLluvia", Label: "Último día de lluvia", Type: FieldText},
					{ID: "hora", Label: "Hora de la prueba", Type: FieldText},
					{ID: "notaMetodo", Label: "Nota sobre el método", Type: FieldText},
				},
			},
			{
				ID: "equipo", Title: "Equipo de Medición", Icon: "🧰", Kind: KindForm, Source: "equipo", Extra: true,
				Fields: []Field{
					{ID: "equipoMarca", Label: "Marca", Type: FieldText},
					{ID: "equipoModelo", Label: "Modelo", Type: FieldText},
					{ID: "equipoSerial", Label: "Serie", Type: FieldText},
					{ID: "equipoCalibracion", Label: "Fecha de calibración", Type: FieldText},
					{ID: "distanciaElectrodoCorriente", Label: "Distancia electrodo de corriente (m)", Type: FieldNumber},
				},
			},
			{
				ID: "medicion", Title: "Mediciones de Resistencia", Icon: "📏", Kind: KindForm, Source: "medicion", Extra: true,
				Fields: []Field{
					{ID: "rPataTorre", Label: "Pata de torre (Ω)", Type: FieldNumber},
					{ID: "fotoPataTorre", Label: "Foto pata de torre", Type: FieldPhoto},
					{ID: "rCerramiento", Label: "Cerramiento (Ω)", Type: FieldNumber},
					{ID: "fotoCerramiento", Label: "Foto cerramiento", Type: FieldPhoto},
					{ID: "rPorton", Label: "Portón (Ω)", Type: FieldNumber},
					{ID: "fotoPorton", Label: "Foto portón", Type: FieldPhoto},
					{ID: "rPararrayos", Label: "Pararrayos (Ω)", Type: FieldNumber},
					{ID: "fotoPararrayos", Label: "Foto pararrayos", Type: FieldPhoto},
					{ID: "rBarraSPT", Label: "Barra SPT (Ω)", Type: FieldNumber},
					{ID: "fotoBarraSPT", Label: "Foto barra SPT", Type: FieldPhoto},
					{ID: "rEscalerilla1", Label: "Escalerilla #1 (Ω)", Type: FieldNumber},
					{ID: "fotoEscalerilla1", Label: "Foto escalerilla #1", Type: FieldPhoto},
					{ID: "rEscalerilla2", Label: "Escalerilla #2 (Ω)", Type: FieldNumber},
					{ID: "fotoEscalerilla2", Label: "Foto escalerilla #2", Type: FieldPhoto},
				},
			},
			{
				ID: "resultado", Title: "Resultado de la Prueba", Icon: "🧮", Kind: KindComputed,
				Compute: computeGroundingResult,
			},
			{
				ID: "observaciones", Title: "Observaciones", Icon: "📝", Kind: KindForm, Source: "observaciones", Extra: true,
				Fields: []Field{
					{ID: "observaciones", Label: "Observaciones", Type: FieldText},
					{ID: "firmaTecnico", Label: "Firma del técnico", Type: FieldSignature},
				},
			},
		},
	}
}

func computeGroundingResult(data map[string]any) []Computed {
	sum, rg, ok := GroundingResistance(ObjectAt(data, "medicion"))
	if !ok {
		return nil
	}
	return []Computed{
		{Label: "Suma de resistencias (Ω)", Value: Round2(sum)},
		{Label: "Resistencia promedio RG (Ω)", Value: rg},
	}
}
