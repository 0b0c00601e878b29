package formschema

// InspectionSchema is the general-inspection template. Site data lives in
// data.siteInfo and answers in data.items keyed by item id.
func InspectionSchema() FormSchema {
	return FormSchema{
		Type:    Inspection,
		Anchors: []string{"siteInfo", "items"},
		Sections: []Section{
			{
				ID: "sitio", Title: "Información del sitio", Icon: "📋", Kind: KindForm, Source: "siteInfo",
				Fields: []Field{
					{ID: "proveedor", Label: "Proveedor", Type: FieldText},
					{ID: "idSitio", Label: "ID Sitio", Type: FieldText},
					{ID: "nombreSitio", Label: "Nombre Sitio", Type: FieldText},
					{ID: "tipoSitio", Label: "Tipo de Sitio", Type: FieldText},
					{ID: "coordenadas", Label: "Coordenadas GPS", Type: FieldText},
					{ID: "direccion", Label: "Dirección", Type: FieldText},
					{ID: "fecha", Label: "Fecha", Type: FieldText},
					{ID: "hora", Label: "Hora", Type: FieldText},
					{ID: "tipoTorre", Label: "Tipo de Torre", Type: FieldText},
					{ID: "alturaTorre", Label: "Altura Torre (m)", Type: FieldNumber},
				},
			},
			{
				ID: "acceso", Title: "Acceso y Perímetro", Icon: "🚪", Kind: KindChecklist, Source: "items",
				Items: []Item{
					{ID: "acc-1", Name: "¿El camino de acceso está en buen estado?"},
					{ID: "acc-2", Name: "¿La malla perimetral está completa?"},
					{ID: "acc-3", Name: "¿El candado y el portón funcionan correctamente?"},
					{ID: "acc-4", Name: "¿La señalización de acceso es visible?"},
				},
			},
			{
				ID: "seguridad", Title: "Seguridad", Icon: "🔒", Kind: KindChecklist, Source: "items",
				Items: []Item{
					{ID: "seg-1", Name: "¿Existen señales de intrusión o vandalismo?"},
					{ID: "seg-2", Name: "¿El extintor está vigente y accesible?"},
					{ID: "seg-3", Name: "¿La iluminación perimetral funciona?"},
				},
			},
			{
				ID: "estructura", Title: "Estructura", Icon: "🗼", Kind: KindChecklist, Source: "items",
				Items: []Item{
					{ID: "est-1", Name: "¿La torre presenta corrosión visible?"},
					{ID: "est-2", Name: "¿La tornillería está completa?"},
					{ID: "est-3", Name: "¿La cimentación está libre de grietas?"},
					{ID: "est-4", Name: "¿La luz de obstrucción funciona?"},
				},
			},
			{
				ID: "tierras", Title: "Puesta a Tierra", Icon: "⚡", Kind: KindChecklist, Source: "items",
				Items: []Item{
					{ID: "pt-1", Name: "¿Las conexiones a tierra están firmes?"},
					{ID: "pt-2", Name: "¿El pararrayos está en buen estado?"},
					{ID: "pt-3", Name: "¿La barra de tierra está libre de sulfatación?"},
				},
			},
			{
				ID: "limpieza", Title: "Orden y Limpieza", Icon: "🧹", Kind: KindChecklist, Source: "items",
				Items: []Item{
					{ID: "lim-1", Name: "¿El sitio está libre de maleza?"},
					{ID: "lim-2", Name: "¿El sitio está libre de basura y escombros?"},
					{ID: "lim-3", Name: "¿Los drenajes están despejados?"},
				},
			},
		},
	}
}
