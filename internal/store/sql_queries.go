package store

// Both tables are single-row (id fixed to 1), so every write is an
// upsert over the same row and reads never need a predicate beyond
// the fixed id.
const (
	upsertUsuario = `
		INSERT INTO usuario (id, idus, tipo_usuario, numero_celular, documento, nombre)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			idus = excluded.idus,
			tipo_usuario = excluded.tipo_usuario,
			numero_celular = excluded.numero_celular,
			documento = excluded.documento,
			nombre = excluded.nombre`

	upsertSesion = `
		INSERT INTO sesion (id, token, expira_en, codigo_acceso_expira, recordar)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			expira_en = excluded.expira_en,
			codigo_acceso_expira = excluded.codigo_acceso_expira,
			recordar = excluded.recordar`

	updateSesion = `
		UPDATE sesion
		SET token = ?, expira_en = ?, codigo_acceso_expira = ?, recordar = ?
		WHERE id = 1`

	selectUsuario = `
		SELECT idus, tipo_usuario, numero_celular, documento, nombre
		FROM usuario WHERE id = 1`

	selectSesion = `
		SELECT token, expira_en, codigo_acceso_expira, recordar
		FROM sesion WHERE id = 1`

	deleteUsuario = `DELETE FROM usuario WHERE id = 1`
	deleteSesion  = `DELETE FROM sesion WHERE id = 1`
)
