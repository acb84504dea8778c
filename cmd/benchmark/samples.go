package main

// Sample is a source/translation pair used for benchmarking.
type Sample struct {
	Name string
	Src  string
	Tgt  string
}

// Samples contains realistic Spanish work emails with English translations
// at varying lengths. The translations carry deliberate mistakes so the
// audit has something to find. Used by default benchmark mode for
// performance measurement.
var Samples = []Sample{
	{
		Name: "tiny",
		Src:  "¿Puedes revisar el informe cuando tengas un momento? Creo que está listo, pero no estoy seguro de la sección de costes.",
		Tgt:  "Can you review the report when you have a moment? I think it is ready but I am not sure about the costs section.",
	},
	{
		Name: "short",
		Src: `Hola equipo,

Quería contaros que el despliegue de ayer fue bien. Todos los servicios funcionan con normalidad y de momento no hemos visto errores en los registros. Lo único es que el tiempo de respuesta del buscador es algo más alto de lo esperado, unos 450ms en lugar de 300ms. Actualmente estoy investigando la causa y os mantendré informados.

Gracias,
Manuel`,
		Tgt: `Hi team,

I wanted to tell you that yesterday's deployment went well. All services work normally and for now we have not seen errors in the registers. The only thing is that the response time of the searcher is somewhat higher than expected, about 450ms instead of 300ms. Actually I am investigating the cause and I will keep you informed.

Thanks,
Manuel`,
	},
	{
		Name: "medium",
		Src: `Hola Sara,

Te escribo a raíz de la reunión de esta mañana. He estado revisando el problema de autenticación que varios usuarios reportaron la semana pasada. Después de analizar los registros, he visto que el problema está relacionado con la renovación del token cuando la sesión caduca mientras el usuario está rellenando un formulario largo.

Lo que ocurre es lo siguiente: el token caduca, el servicio de renovación devuelve uno nuevo, pero la petición original que provocó la renovación se pierde porque no la reintentamos. Eso significa que el usuario pierde los datos del formulario, lo cual es muy frustrante, sobre todo en el formulario de alta, que tiene unos quince campos.

Creo que la mejor solución sería implementar una cola que retenga las peticiones pendientes mientras se renueva el token y las reenvíe una vez tengamos el token nuevo. He visto este patrón en varias bibliotecas de OAuth y funciona bien.

Puedo tener un borrador listo el jueves si te parece bien este enfoque. Dime qué opinas o si tienes otra idea.

Un saludo,
Manuel`,
		Tgt: `Hi Sara,

I write to you at the root of this morning's meeting. I have been reviewing the authentication problem that several users reported last week. After analyzing the registers, I have seen that the problem is related with the renovation of the token when the session expires while the user is filling a long form.

What happens is the following: the token expires, the renovation service returns a new one, but the original petition that provoked the renovation is lost because we do not retry it. That means the user loses the form data, which is very frustrating, above all in the registration form, which has about fifteen fields.

I think the best solution would be to implement a queue that retains the pending petitions while the token is renewed and resends them once we have the new token. I have seen this pattern in several OAuth libraries and it works well.

I can have a draft ready on Thursday if this approach seems good to you. Tell me what you think or if you have another idea.

Greetings,
Manuel`,
	},
	{
		Name: "long",
		Src: `Asunto: Migración de infraestructura del cuarto trimestre. Estado y decisión pendiente

Hola a todos,

Quiero poneros al día sobre la migración de infraestructura y plantearos una decisión que tenemos que tomar antes del final de esta semana.

Estado actual:
Hemos migrado con éxito tres de los cinco servicios al nuevo clúster de Kubernetes. La pasarela de la API, el servicio de notificaciones y el servicio de gestión de usuarios llevan en producción sobre la nueva infraestructura desde el lunes pasado. Las métricas muestran que los tiempos de respuesta han mejorado entre un 15 y un 20 por ciento, lo cual es una gran noticia.

Sin embargo, nos hemos encontrado con un bloqueo en los dos servicios restantes: el servicio de facturación y el canal de analítica.

El servicio de facturación depende de una base de datos PostgreSQL heredada que corre en una versión muy antigua (9.6) y usa extensiones incompatibles con el servicio gestionado que habíamos previsto. Tenemos dos opciones:

Opción A: Actualizar primero PostgreSQL a la versión 15 y migrar después. Supondría unas dos semanas más de trabajo y cierto riesgo, porque habría que probar todas las consultas de facturación contra la versión nueva. La ventaja es que acabaríamos con una base de datos moderna y más fácil de mantener.

Opción B: Mantener la base de datos heredada en una máquina virtual dedicada junto al nuevo clúster. Es más rápido (dos o tres días), pero implica mantener la infraestructura antigua para este servicio de forma indefinida, y la red entre el clúster y la máquina virtual añade complejidad.

Mi recomendación es la opción A para facturación y posponer la migración de la analítica hasta que podamos rediseñarla con procesamiento en flujo en lugar de por lotes. Así no comprometemos la calidad y evitamos los costes altos de almacenamiento.

Hoy compartiré en la unidad del equipo un documento con la comparativa detallada. Revisadlo y decidme qué pensáis antes del viernes para cerrar el plan de migración.

Gracias,
Manuel`,
		Tgt: `Subject: Infrastructure migration of the fourth trimester. State and pending decision

Hello to everybody,

I want to put you up to date about the infrastructure migration and to raise a decision that we have to take before the end of this week.

Actual state:
We have migrated with success three of the five services to the new Kubernetes cluster. The API gateway, the notifications service and the users management service are in production over the new infrastructure since last Monday. The metrics show that the response times have improved between 15 and 20 percent, which is a great notice.

Nevertheless, we have found a blockage in the two remaining services: the invoicing service and the analytics channel.

The invoicing service depends on an inherited PostgreSQL database that runs in a very ancient version (9.6) and uses extensions incompatible with the managed service that we had foreseen. We have two options:

Option A: To actualize first PostgreSQL to version 15 and migrate after. It would suppose about two more weeks of work and certain risk, because we would have to prove all the invoicing consultations against the new version. The advantage is that we would finish with a modern database easier to maintain.

Option B: To maintain the inherited database in a dedicated virtual machine next to the new cluster. It is faster (two or three days), but it implies to maintain the ancient infrastructure for this service in an indefinite way, and the net between the cluster and the virtual machine adds complexity.

My recommendation is option A for invoicing and to postpone the migration of the analytics until we can redesign it with processing in flow instead of by lots. This way we do not compromise the quality and we avoid the high costs of storage.

Today I will share in the team unit a document with the detailed comparative. Revise it and tell me what you think before Friday to close the migration plan.

Thanks,
Manuel`,
	},
}

// QualitySamples target specific classes of translation error.
// Used by --quality mode to compare what each model catches.
var QualitySamples = []Sample{
	{
		Name: "falsefriends",
		// Tests: actualmente/actually, asistir/assist, carpeta/carpet
		Src:  "Actualmente estamos revisando la propuesta y esperamos asistir a la reunión del jueves. He dejado los contratos en la carpeta compartida.",
		Tgt:  "Actually we are reviewing the proposal and we hope to assist to the meeting on Thursday. I have left the contracts in the shared carpet.",
	},
	{
		Name: "omission",
		// Tests: whole sentence dropped from the translation
		Src:  "El proveedor confirmó la entrega para el lunes. Si hay retrasos, nos avisarán con 48 horas de antelación. El pago se realizará a la recepción del pedido.",
		Tgt:  "The supplier confirmed delivery for Monday. Payment will be made upon receipt of the order.",
	},
	{
		Name: "addition",
		// Tests: translator invents a detail absent from the source
		Src:  "La reunión se ha pospuesto hasta nuevo aviso.",
		Tgt:  "The meeting has been postponed until next Friday at 10am due to scheduling conflicts.",
	},
	{
		Name: "terminology",
		// Tests: despliegue/monitorización drifting across renderings
		Src:  "El despliegue de la versión 2.8 se completó sin incidencias. La monitorización no detectó errores durante el despliegue, y el panel de monitorización muestra métricas estables.",
		Tgt:  "The unfolding of version 2.8 was completed without incidents. The monitorization did not detect errors during the rollout, and the monitoring panel shows stable metrics.",
	},
	{
		Name: "calques",
		// Tests: idioms rendered word by word
		Src:  "Creo que has dado en el clavo con el diagnóstico. Me pondré en contacto con el cliente mañana a primera hora para darle la buena noticia.",
		Tgt:  "I think you have given in the nail with the diagnosis. I will put myself in contact with the client tomorrow at first hour to give him the good notice.",
	},
}
