package content

// BuiltinVersion is the version of the embedded question bank.
const BuiltinVersion = "1.0.0"

// Builtin returns the embedded BIOFIT training content.
func Builtin() *Pack {
	return &Pack{
		Version: BuiltinVersion,
		Thresholds: Thresholds{
			Avanzado: 400,
			Experto:  800,
			Maestro:  1200,
		},
		Badges: []Badge{
			{ID: "mes1", Name: "Novato BIOFIT", Description: "Completaste tu primer mes de entrenamiento.", Icon: "🌱", RequiredPoints: 200},
			{ID: "mes3", Name: "Asesor de Salud", Description: "Dominas los beneficios metabólicos (Diabetes/Colesterol).", Icon: "🩺", RequiredPoints: 600},
			{ID: "mes6", Name: "Embajador PharmaBrand", Description: "Experto clínico en Psyllium Muciloide.", Icon: "👑", RequiredPoints: 1200},
		},
		TrueFalse: map[int][]TrueFalseQuestion{
			1: {
				{ID: 101, Statement: "BIOFIT tiene una disolución superior del 98% frente al 47% de la competencia.", IsTrue: true, Explanation: "Correcto. Su tecnología evita grumos y mejora la experiencia del paciente."},
				{ID: 102, Statement: "Cada 100g de BIOFIT contienen 47.7g de Psyllium Muciloide.", IsTrue: true, Explanation: "Correcto. Es una formulación de alta pureza."},
				{ID: 103, Statement: "El precio PVP de BIOFIT es de $18.50.", IsTrue: false, Explanation: "Falso. El PVP sugerido es de $15.90, siendo el más competitivo."},
				{ID: 104, Statement: "BIOFIT Original tiene el mismo éxito de sabor que el de Fresa.", IsTrue: true, Explanation: "Correcto. El 97% de evaluadores prefiere BIOFIT sobre otros Psyllium."},
				{ID: 105, Statement: "BIOFIT rinde menos que los sachets de la competencia.", IsTrue: false, Explanation: "Falso. Su presentación de 300g ofrece mayor rendimiento y mejor precio por gramo."},
			},
			2: {
				{ID: 201, Statement: "La fibra insoluble es la que más aumenta la masa fecal por retener agua.", IsTrue: true, Explanation: "Correcto. Según la FEAD, la fibra insoluble incrementa el volumen de las heces."},
				{ID: 202, Statement: "Se recomienda consumir de 2 a 5 raciones de legumbres a la semana.", IsTrue: true, Explanation: "Correcto. Las legumbres son una fuente primordial de fibra."},
				{ID: 203, Statement: "BIOFIT solo debe usarse cuando ya hay estreñimiento severo.", IsTrue: false, Explanation: "Falso. BIOFIT también está indicado para la prevención y mejora de la salud digestiva general."},
				{ID: 204, Statement: "La práctica de yoga o carrera suave ayuda a reducir el tiempo de digestión.", IsTrue: true, Explanation: "Correcto. La actividad física es un pilar fundamental para el tránsito intestinal."},
			},
			3: {
				{ID: 301, Statement: "El estudio de Anderson demostró que el Psyllium mejora los perfiles lipídicos séricos.", IsTrue: true, Explanation: "Correcto. Los niveles de LDL fueron 6.7% más bajos que con placebo."},
				{ID: 302, Statement: "BIOFIT puede causar dependencia intestinal si se usa más de 6 días.", IsTrue: false, Explanation: "Falso. BIOFIT no es un laxante estimulante; regula de forma natural sin causar dependencia."},
				{ID: 303, Statement: "El meta-análisis de 19 ensayos clínicos confirmó que el Psyllium reduce la HbA1c.", IsTrue: true, Explanation: "Correcto. Mejora significativamente el control glucémico en pacientes Tipo 2."},
				{ID: 304, Statement: "El Psyllium reduce el hambre en un 39% según el estudio de Brum.", IsTrue: true, Explanation: "Correcto. Aumenta la sensación de saciedad significativamente."},
			},
		},
		Match: map[int][]MatchItem{
			1: {
				{ID: "1a", Text: "PVP BIOFIT", Kind: MatchBenefit, MatchID: "1b"},
				{ID: "1b", Text: "$15.90", Kind: MatchSystem, MatchID: "1a"},
				{ID: "2a", Text: "PVP Competencia (Rowe)", Kind: MatchBenefit, MatchID: "2b"},
				{ID: "2b", Text: "$17.50", Kind: MatchSystem, MatchID: "2a"},
				{ID: "3a", Text: "Aceptación Sabor", Kind: MatchBenefit, MatchID: "3b"},
				{ID: "3b", Text: "97% de evaluadores", Kind: MatchSystem, MatchID: "3a"},
				{ID: "4a", Text: "Disolución Superior", Kind: MatchBenefit, MatchID: "4b"},
				{ID: "4b", Text: "98% de éxito", Kind: MatchSystem, MatchID: "4a"},
			},
			2: {
				{ID: "5a", Text: "Frutas diarias", Kind: MatchBenefit, MatchID: "5b"},
				{ID: "5b", Text: "3 piezas enteras", Kind: MatchSystem, MatchID: "5a"},
				{ID: "6a", Text: "Verduras diarias", Kind: MatchBenefit, MatchID: "6b"},
				{ID: "6b", Text: "2 raciones", Kind: MatchSystem, MatchID: "6a"},
				{ID: "7a", Text: "Cereales diarios", Kind: MatchBenefit, MatchID: "7b"},
				{ID: "7b", Text: "4 a 6 raciones", Kind: MatchSystem, MatchID: "7a"},
				{ID: "8a", Text: "Hidratación", Kind: MatchBenefit, MatchID: "8b"},
				{ID: "8b", Text: "1.5 a 2 litros", Kind: MatchSystem, MatchID: "8a"},
			},
		},
		Scenarios: map[int][]Scenario{
			2: {
				{
					ID:            201,
					Customer:      "¿BIOFIT tiene el mismo efecto si lo mezclo con jugo en lugar de agua?",
					ClerkResponse: "Sí, puede mezclarlo con agua o jugos naturales, siempre bebiéndolo de inmediato para evitar que espese.",
					IsCorrect:     true,
					Feedback:      "¡Correcto! BIOFIT es versátil en su administración.",
				},
				{
					ID:            202,
					Customer:      "Mi doctor me dijo que coma fibra pero me da muchos gases. ¿BIOFIT me hará lo mismo?",
					ClerkResponse: "BIOFIT tiene una pureza y disolución superior que minimiza la fermentación excesiva y gases comparado con otras fibras.",
					IsCorrect:     true,
					Feedback:      "Muy bien. La calidad del Psyllium influye directamente en la tolerancia.",
				},
				{
					ID:            203,
					Customer:      "¿BIOFIT sirve para limpiar el colon antes de una cirugía?",
					ClerkResponse: "No, BIOFIT es para el manejo del estreñimiento y salud metabólica, no es un preparador quirúrgico fuerte.",
					IsCorrect:     true,
					Feedback:      "Correcto. Hay que diferenciar entre suplementos de fibra y laxantes osmóticos de choque.",
				},
				{
					ID:            204,
					Customer:      "Busco algo para mi papá de 80 años, le cuesta mucho tragar polvos con grumos.",
					ClerkResponse: "BIOFIT es ideal para él por su textura homogénea sin grumos, lo que facilita la deglución en adultos mayores.",
					IsCorrect:     true,
					Feedback:      "¡Excelente punto de venta! La adherencia en adultos mayores depende de la textura.",
				},
			},
			3: {
				{
					ID:            301,
					Customer:      "Estoy embarazada y tengo mucho estreñimiento. ¿Puedo tomar BIOFIT?",
					ClerkResponse: "El Psyllium es de acción mecánica y segura, pero siempre consulte a su ginecólogo antes de iniciar cualquier producto.",
					IsCorrect:     true,
					Feedback:      "Correcto. Aunque es seguro, el protocolo ético es referir a consulta profesional en embarazo.",
				},
				{
					ID:            302,
					Customer:      "¿Por qué el estudio de Anderson es importante para mi colesterol?",
					ClerkResponse: "Porque demostró que BIOFIT reduce el LDL un 6.7% sin efectos secundarios, siendo un gran apoyo a su dieta.",
					IsCorrect:     true,
					Feedback:      "¡Respuesta experta! Citar la evidencia clínica convence a pacientes informados.",
				},
				{
					ID:            303,
					Customer:      "Si tomo BIOFIT, ¿puedo dejar de tomar mi pastilla para la diabetes?",
					ClerkResponse: "No, BIOFIT ayuda a controlar la glucosa (estudio Cicero), pero jamás debe suspender su tratamiento médico sin autorización del doctor.",
					IsCorrect:     true,
					Feedback:      "Responsabilidad ante todo. BIOFIT es un coadyuvante, no un sustituto farmacológico.",
				},
			},
		},
		Trivia: map[int][]TriviaQuestion{
			1: {
				{ID: 11, Question: "¿Cuál es la dosis recomendada para adultos?", Options: []string{"1 cucharada 1 a 3 veces al día", "1 sachet a la semana", "Toda la lata en 3 días"}, CorrectIndex: 0},
				{ID: 12, Question: "¿Qué sucede si esperas mucho para tomar BIOFIT tras mezclarlo?", Options: []string{"Se evapora", "Se vuelve una masa gelatinosa difícil de tragar", "Cambia de color a azul"}, CorrectIndex: 1},
				{ID: 13, Question: "BIOFIT es apto para diabéticos por ser endulzado con:", Options: []string{"Miel", "Azúcar morena", "Sucralosa"}, CorrectIndex: 2},
				{ID: 14, Question: "¿En cuántos sabores viene BIOFIT?", Options: []string{"1 (Original)", "2 (Fresa y Naranja)", "3 (Fresa, Naranja y Original)"}, CorrectIndex: 2},
			},
			2: {
				{ID: 21, Question: "¿Qué beneficio extra ofrece la fibra insoluble según la FEAD?", Options: []string{"Aumenta masa fecal y frecuencia", "Aclara la piel", "Quita el sueño"}, CorrectIndex: 0},
				{ID: 22, Question: "Para educar el intestino, se recomienda ir al baño:", Options: []string{"Solo cuando haya urgencia", "A la misma hora todos los días", "Cada 3 días"}, CorrectIndex: 1},
				{ID: 23, Question: "¿Cuál es la postura recomendada para facilitar la deposición?", Options: []string{"De pie", "Sentado normal", "Rodillas próximas al pecho (con banqueta)"}, CorrectIndex: 2},
				{ID: 24, Question: "Una ración individual de legumbres equivale a unos:", Options: []string{"10 gramos", "60 gramos en crudo", "1 kilogramo"}, CorrectIndex: 1},
			},
			3: {
				{ID: 31, Question: "En el estudio de Cicero, ¿cuánto bajó la glucemia en ayunas?", Options: []string{"-2%", "-18%", "-50%"}, CorrectIndex: 1},
				{ID: 32, Question: "¿Qué porcentaje de reducción de insulina mostró el grupo Psyllium?", Options: []string{"-17%", "-5%", "0%"}, CorrectIndex: 0},
				{ID: 33, Question: "¿Cuánto tiempo duró el estudio de Anderson para colesterol?", Options: []string{"2 semanas", "1 mes", "26 semanas"}, CorrectIndex: 2},
				{ID: 34, Question: "Según el estudio de Brum, ¿cuántas horas dura la sensación de saciedad?", Options: []string{"1 hora", "4 horas", "12 horas"}, CorrectIndex: 1},
			},
		},
	}
}
