package formschema

// EquipmentSchema is the equipment inventory. Site data in data.siteInfo,
// tower equipment in data.torre.items, floor clients in data.piso.clientes.
func EquipmentSchema() FormSchema {
	return FormSchema{
		Type: Equipment,
		Sections: []Section{
			{
				ID: "sitio", Title: "Datos del sitio", Icon: "📋", Kind: KindForm, Source: "siteInfo", Extra: true,
				Fields: []Field{
					{ID: "proveedor", Label: "Proveedor", Type: FieldText},
					{ID: "tipoVisita", Label: "Tipo de visita", Type: FieldText},
					{ID: "idSitio", Label: "ID Sitio", Type: FieldText},
					{ID: "nombreSitio", Label: "Nombre del sitio", Type: FieldText},
					{ID: "fechaInicio", Label: "Fecha de inicio", Type: FieldText},
					{ID: "fechaTermino", Label: "Fecha de término", Type: FieldText},
					{ID: "direccion", Label: "Dirección", Type: FieldText},
					{ID: "alturaMts", Label: "Altura (m)", Type: FieldNumber},
					{ID: "tipoSitio", Label: "Tipo de sitio", Type: FieldText},
					{ID: "tipoEstructura", Label: "Tipo de estructura", Type: FieldText},
					{ID: "latitud", Label: "Latitud", Type: FieldText},
					{ID: "longitud", Label: "Longitud", Type: FieldText},
				},
			},
			{
				ID: "torre", Title: "Equipos en torre", Icon: "🗼", Kind: KindTable, Source: "torre.items",
				Columns: []Column{
					{ID: "alturaMts", Label: "Altura (m)"},
					{ID: "orientacion", Label: "Orientación"},
					{ID: "tipoEquipo", Label: "Tipo de equipo"},
					{ID: "cantidad", Label: "Cantidad"},
					{ID: "dimensionesMts", Label: "Dimensiones (m)"},
					{ID: "areaM2", Label: "Área (m²)"},
					{ID: "carrier", Label: "Carrier"},
				},
			},
			{
				ID: "piso", Title: "Clientes en piso", Icon: "🏗️", Kind: KindTable, Source: "piso.clientes", Index: true,
				Columns: []Column{
					{ID: "tipoCliente", Label: "Tipo"},
					{ID: "nombreCliente", Label: "Cliente"},
					{ID: "areaArrendada", Label: "Área arrendada"},
					{ID: "areaEnUso", Label: "Área en uso"},
					{ID: "placaEquipos", Label: "Placa de equipos"},
				},
			},
			{
				ID: "resumen", Title: "Resumen de inventario", Icon: "📊", Kind: KindComputed,
				Compute: computeEquipmentSummary,
			},
			{
				ID: "documentacion", Title: "Documentación del sitio", Icon: "📷", Kind: KindPhotos,
				Fields: []Field{
					{ID: "fotoTorre", Label: "Foto de torre", Type: FieldPhoto},
					{ID: "croquisEsquematico", Label: "Croquis esquemático", Type: FieldPhoto},
					{ID: "planoPlanta", Label: "Plano de planta", Type: FieldPhoto},
				},
			},
		},
	}
}

func computeEquipmentSummary(data map[string]any) []Computed {
	items := ArrayAt(data, "torre.items")
	clients := ArrayAt(data, "piso.clientes")
	if len(items) == 0 && len(clients) == 0 {
		return nil
	}

	var units, area float64
	for _, raw := range items {
		it, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if n, ok := ToFloat(it["cantidad"]); ok {
			units += n
		}
		if a, ok := ToFloat(it["areaM2"]); ok {
			area += a
		}
	}

	cabinets := 0
	for _, raw := range clients {
		c, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if g, ok := c["gabinetes"].([]any); ok {
			cabinets += len(g)
		}
	}

	return []Computed{
		{Label: "Equipos en torre (unidades)", Value: units},
		{Label: "Área total en torre (m²)", Value: Round2(area)},
		{Label: "Clientes en piso", Value: float64(len(clients))},
		{Label: "Gabinetes", Value: float64(cabinets)},
	}
}
