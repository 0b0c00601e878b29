package formschema

// MaintenanceSchema is the preventive-maintenance template. Form steps read
// from data.formData, checklist steps from data.checklistData.
func MaintenanceSchema() FormSchema {
	return FormSchema{
		Type:    Maintenance,
		Anchors: []string{"formData", "checklistData"},
		Sections: []Section{
			{
				ID: "datos", Title: "Datos Generales", Icon: "📋", Kind: KindForm, Source: "formData",
				Fields: []Field{
					{ID: "proveedor", Label: "Proveedor", Type: FieldText},
					{ID: "tipoVisita", Label: "Tipo de visita", Type: FieldText},
					{ID: "nombreSitio", Label: "Nombre del sitio", Type: FieldText},
					{ID: "idSitio", Type: FieldText},
					{ID: "coordenadas", Label: "Coordenadas GPS", Type: FieldText},
					{ID: "tipoSitio", Label: "Tipo de sitio", Type: FieldText},
					{ID: "fechaInicio", Label: "Fecha de inicio", Type: FieldText},
					{ID: "fechaTermino", Label: "Fecha de término", Type: FieldText},
					{ID: "horaEntrada", Label: "Hora de entrada", Type: FieldText},
					{ID: "horaSalida", Label: "Hora de salida", Type: FieldText},
				},
			},
			{
				ID: "torre", Title: "Información de la Torre", Icon: "🗼", Kind: KindForm, Source: "formData",
				Fields: []Field{
					{ID: "tipoTorre", Label: "Tipo de torre", Type: FieldText},
					{ID: "alturaTorre", Label: "Altura de la torre (m)", Type: FieldNumber},
					{ID: "alturaEdificio", Label: "Altura del edificio (m)", Type: FieldNumber},
					{ID: "condicionTorre", Label: "Condición de la torre", Type: FieldStatus},
					{ID: "numSecciones", Label: "Número de secciones", Type: FieldNumber},
					{ID: "tipoSeccion", Label: "Tipo de sección", Type: FieldText},
					{ID: "tipoPierna", Label: "Tipo de pierna", Type: FieldText},
					{ID: "tieneCamuflaje", Label: "¿Tiene camuflaje?", Type: FieldText},
					{ID: "tipoCamuflaje", Label: "Tipo de camuflaje", Type: FieldText},
					{ID: "fotoTorre", Label: "Foto de la Torre", Type: FieldPhoto},
				},
			},
			{
				ID: "direccion", Title: "Dirección del Sitio", Icon: "📍", Kind: KindForm, Source: "formData",
				Fields: []Field{
					{ID: "calle", Label: "Calle", Type: FieldText},
					{ID: "numero", Label: "Número", Type: FieldText},
					{ID: "colonia", Label: "Colonia", Type: FieldText},
					{ID: "ciudad", Label: "Ciudad", Type: FieldText},
					{ID: "estado", Label: "Estado / Provincia", Type: FieldText},
					{ID: "codigoPostal", Label: "Código postal", Type: FieldText},
					{ID: "pais", Label: "País", Type: FieldText},
				},
			},
			{
				ID: "acceso", Title: "Acceso al Sitio", Icon: "🔑", Kind: KindForm, Source: "formData",
				Fields: []Field{
					{ID: "descripcionSitio", Label: "Descripción del sitio", Type: FieldText},
					{ID: "restriccionHorario", Label: "Restricción de horario", Type: FieldText},
					{ID: "descripcionAcceso", Label: "Descripción del acceso", Type: FieldText},
					{ID: "propietarioLocalizable", Label: "Propietario localizable", Type: FieldText},
					{ID: "tipoLlave", Label: "Tipo de llave", Type: FieldText},
					{ID: "claveCombinacion", Label: "Clave / combinación", Type: FieldText},
					{ID: "memorandumRequerido", Label: "Memorándum requerido", Type: FieldText},
					{ID: "problemasAcceso", Label: "Problemas de acceso", Type: FieldText},
					{ID: "fotoCandado", Label: "Foto del Candado", Type: FieldPhoto},
				},
			},
			{
				ID: "electrico", Title: "Sistema Eléctrico", Icon: "⚡", Kind: KindForm, Source: "formData",
				Fields: []Field{
					{ID: "ubicacionMedidores", Label: "Ubicación de medidores", Type: FieldText},
					{ID: "tipoConexion", Label: "Tipo de conexión", Type: FieldText},
					{ID: "capacidadTransformador", Label: "Capacidad del transformador", Type: FieldText},
					{ID: "numMedidores", Label: "Número de medidores", Type: FieldNumber},
					{ID: "medidorSeparadoLuces", Label: "Medidor separado para luces", Type: FieldText},
					{ID: "fibraOptica", Label: "Fibra óptica", Type: FieldText},
				},
			},
			{
				ID: "cierre", Title: "Observaciones Generales", Icon: "📝", Kind: KindForm, Source: "formData",
				Fields: []Field{
					{ID: "vandalismo", Label: "Vandalismo", Type: FieldText},
					{ID: "descripcionVandalismo", Label: "Descripción del vandalismo", Type: FieldText},
					{ID: "equiposFaltantes", Label: "Equipos faltantes", Type: FieldText},
					{ID: "defectosOperacion", Label: "Defectos de operación", Type: FieldText},
					{ID: "observacionesGenerales", Label: "Observaciones generales", Type: FieldText},
					{ID: "firmaTecnico", Label: "Firma del técnico", Type: FieldSignature},
				},
			},
			{
				ID: "chk-sitio", Title: "Limpieza y Sitio", Icon: "🧹", Kind: KindChecklist, Source: "checklistData",
				Items: []Item{
					{ID: "1.1", Name: "Limpieza general del sitio"},
					{ID: "1.2", Name: "Retiro de maleza y basura"},
					{ID: "1.3", Name: "Estado de la malla perimetral"},
					{ID: "1.4", Name: "Estado del portón y candado"},
					{ID: "1.5", Name: "Drenajes libres de obstrucción"},
				},
			},
			{
				ID: "chk-torre", Title: "Estructura de la Torre", Icon: "🏗️", Kind: KindChecklist, Source: "checklistData",
				Items: []Item{
					{ID: "2.1", Name: "Verticalidad de la torre"},
					{ID: "2.2", Name: "Tornillería completa y apretada"},
					{ID: "2.3", Name: "Corrosión en perfiles"},
					{ID: "2.4", Name: "Estado de la pintura"},
					{ID: "2.5", Name: "Balizamiento y luz de obstrucción"},
				},
			},
			{
				ID: "chk-tierra", Title: "Sistema de Tierras", Icon: "🔌", Kind: KindChecklist, Source: "checklistData",
				Items: []Item{
					{ID: "3.1", Name: "Conexiones de la barra de tierra"},
					{ID: "3.2", Name: "Continuidad del anillo perimetral"},
					{ID: "3.3", Name: "Estado del pararrayos"},
					{ID: "3.4", Name: "Medición de resistencia de tierra", HasValue: true, ValueLabel: "Ω"},
				},
			},
			{
				ID: "chk-tableros", Title: "Tableros y Medición", Icon: "🎛️", Kind: KindChecklist, Source: "checklistData",
				Items: []Item{
					{ID: "4.1", Name: "Estado del tablero principal"},
					{ID: "4.2", Name: "Breakers identificados"},
					{ID: "4.3", Name: "Voltaje de entrada", HasValue: true, ValueLabel: "V"},
					{ID: "4.4", Name: "Iluminación del sitio"},
				},
			},
			{
				ID: "chk-seguridad", Title: "Seguridad y Señalización", Icon: "🦺", Kind: KindChecklist, Source: "checklistData",
				Items: []Item{
					{ID: "5.1", Name: "Señalización de riesgo eléctrico"},
					{ID: "5.2", Name: "Extintor vigente"},
					{ID: "5.3", Name: "Línea de vida operativa"},
					{ID: "5.4", Name: "Rotulación del sitio"},
				},
			},
		},
	}
}
