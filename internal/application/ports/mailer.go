package ports

// Mailer puerto de notificaciones por correo. Las implementaciones son
// best-effort: el caller loguea el error y sigue; un fallo de correo nunca
// hace fallar la operación principal (ni se reintenta).
type Mailer interface {
	// SendAccessCode envía al votante su código de acceso.
	SendAccessCode(name, email, code string) error
	// SendVoterRegisteredNotice avisa a admin/chairman que un votante nuevo
	// espera su código de acceso.
	SendVoterRegisteredNotice(adminEmails []string, voterName, voterEmail string) error
}
