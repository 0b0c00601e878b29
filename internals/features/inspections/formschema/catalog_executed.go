package formschema

// ExecutedSchema is the executed-maintenance evidence form. Only the site
// data is tabular; activity photos are grouped from assets.
func ExecutedSchema() FormSchema {
	return FormSchema{
		Type: Executed,
		Sections: []Section{
			{
				ID: "sitio", Title: "Datos del sitio", Icon: "📋", Kind: KindForm, Source: "siteInfo", Extra: true,
				Fields: []Field{
					{ID: "proveedor", Label: "Proveedor", Type: FieldText},
					{ID: "idSitio", Label: "ID Sitio", Type: FieldText},
					{ID: "nombreSitio", Label: "Nombre del sitio", Type: FieldText},
					{ID: "tipoSitio", Label: "Tipo de sitio", Type: FieldText},
					{ID: "direccion", Label: "Dirección", Type: FieldText},
					{ID: "fechaEjecucion", Label: "Fecha de ejecución", Type: FieldText},
				},
			},
			{ID: "actividades", Title: "Fotos de actividades", Icon: "📷", Kind: KindPhotos},
		},
	}
}
