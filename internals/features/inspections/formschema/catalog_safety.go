package formschema

// SafetySchema is the climbing safety-device inspection. Like grounding,
// sections read from data.<sectionId> and photos carry the bare field id.
func SafetySchema() FormSchema {
	return FormSchema{
		Type: Safety,
		Sections: []Section{
			{
				ID: "datos", Title: "Datos del Sitio", Icon: "📋", Kind: KindForm, Source: "datos", Extra: true,
				Fields: []Field{
					{ID: "proveedor", Label: "Proveedor", Type: FieldText},
					{ID: "tipoVisita", Label: "Tipo de visita", Type: FieldText},
					{ID: "idSitio", Label: "ID Sitio", Type: FieldText},
					{ID: "nombreSitio", Label: "Nombre del sitio", Type: FieldText},
					{ID: "tipoSitio", Label: "Tipo de sitio", Type: FieldText},
					{ID: "tipoEstructura", Label: "Tipo de estructura", Type: FieldText},
					{ID: "altura", Label: "Altura (m)", Type: FieldNumber},
					{ID: "latitud", Label: "Latitud", Type: FieldText},
					{ID: "longitud", Label: "Longitud", Type: FieldText},
					{ID: "direccion", Label: "Dirección", Type: FieldText},
					{ID: "fechaInicio", Label: "Fecha de inicio", Type: FieldText},
					{ID: "fechaTermino", Label: "Fecha de término", Type: FieldText},
				},
			},
			{
				ID: "herrajes", Title: "Herrajes y Cable", Icon: "🔩", Kind: KindForm, Source: "herrajes", Extra: true,
				Fields: []Field{
					{ID: "herrajeInferior", Label: "Herraje inferior", Type: FieldText},
					{ID: "fotoHerrajeInferior", Label: "Foto herraje inferior", Type: FieldPhoto},
					{ID: "diametroCable", Label: "Diámetro del cable", Type: FieldText},
					{ID: "comentarioHerrajeInferior", Label: "Comentario herraje inferior", Type: FieldText},
					{ID: "herrajeSuperior", Label: "Herraje superior", Type: FieldText},
					{ID: "fotoHerrajeSuperior", Label: "Foto herraje superior", Type: FieldPhoto},
					{ID: "estadoCable", Label: "Estado del cable", Type: FieldText},
					{ID: "comentarioCable", Label: "Comentario del cable", Type: FieldText},
					{ID: "oxidacion", Label: "¿Presenta oxidación?", Type: FieldCheckbox},
					{ID: "comentarioOxidacion", Label: "Comentario oxidación", Type: FieldText},
				},
			},
			{
				ID: "prensacables", Title: "Prensacables y Carro", Icon: "🪢", Kind: KindForm, Source: "prensacables", Extra: true,
				Fields: []Field{
					{ID: "prensacableInferior", Label: "Prensacable inferior", Type: FieldText},
					{ID: "cantidadPrensacables", Label: "Cantidad de prensacables", Type: FieldNumber},
					{ID: "distanciamiento", Label: "Distanciamiento", Type: FieldText},
					{ID: "estadoPrensacables", Label: "Estado de prensacables", Type: FieldText},
					{ID: "comentarioPrensacables", Label: "Comentario prensacables", Type: FieldText},
					{ID: "prensacableSuperior", Label: "Prensacable superior", Type: FieldText},
					{ID: "tipoCarro", Label: "Tipo de carro", Type: FieldText},
					{ID: "fotoCarro", Label: "Foto del carro", Type: FieldPhoto},
					{ID: "observacionMordaza", Label: "Observación de mordaza", Type: FieldText},
					{ID: "malaSujecion", Label: "Mala sujeción", Type: FieldText},
					{ID: "comentarioMalaSujecion", Label: "Comentario mala sujeción", Type: FieldText},
				},
			},
			{
				ID: "escalera", Title: "Escalera", Icon: "🪜", Kind: KindForm, Source: "escalera", Extra: true,
				Fields: []Field{
					{ID: "fotoEscalera", Label: "Foto escalera", Type: FieldPhoto},
					{ID: "cantidadTramos", Label: "Cantidad de tramos", Type: FieldNumber},
					{ID: "estadoEscalera", Label: "Estado de la escalera", Type: FieldText},
					{ID: "comentarioEscalera", Label: "Comentario escalera", Type: FieldText},
					{ID: "cantidadUniones", Label: "Cantidad de uniones", Type: FieldNumber},
					{ID: "tramosDañados", Label: "Tramos dañados", Type: FieldText},
					{ID: "diametroTornillo", Label: "Diámetro de tornillo", Type: FieldText},
					{ID: "comentarioTornillos", Label: "Comentario tornillería", Type: FieldText},
				},
			},
			{
				ID: "platinas", Title: "Platinas", Icon: "🔧", Kind: KindForm, Source: "platinas", Extra: true,
				Fields: []Field{
					{ID: "cantidadPlatinas", Label: "Cantidad de platinas", Type: FieldNumber},
					{ID: "observacionPlatinas", Label: "Observación platinas", Type: FieldText},
				},
			},
			{
				ID: "certificacion", Title: "Certificación", Icon: "📜", Kind: KindForm, Source: "certificacion", Extra: true,
				Fields: []Field{
					{ID: "fotoCertificacion", Label: "Foto de certificación", Type: FieldPhoto},
					{ID: "observacionCertificacion", Label: "Observación certificación", Type: FieldText},
				},
			},
		},
	}
}
