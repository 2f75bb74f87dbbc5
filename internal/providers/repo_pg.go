package providers

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo is the Postgres-backed provider repository.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context) ([]Provider, error) {
	const query = `
SELECT id, name, provider_type_code, jurisdiction_code,
       onboard_status, contact_name, contact_email, contact_phone, org_name, org_npi,
       created_at, updated_at
FROM providers
ORDER BY created_at`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Provider
	index := make(map[string]int)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		index[provider.ID] = len(list)
		list = append(list, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return []Provider{}, nil
	}

	const itemsQuery = `
SELECT provider_id, item_key, title, status, notes, updated_at, completed_at
FROM checklist_items
ORDER BY provider_id, position`
	itemRows, err := r.DB.QueryContext(ctx, itemsQuery)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var providerID string
		item, err := scanChecklistItem(itemRows, &providerID)
		if err != nil {
			return nil, err
		}
		if i, ok := index[providerID]; ok {
			list[i].Checklist = append(list[i].Checklist, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PGRepo) GetByID(ctx context.Context, providerID string) (Provider, error) {
	const query = `
SELECT id, name, provider_type_code, jurisdiction_code,
       onboard_status, contact_name, contact_email, contact_phone, org_name, org_npi,
       created_at, updated_at
FROM providers
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, providerID)
	provider, err := scanProvider(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Provider{}, ErrNotFound
		}
		return Provider{}, err
	}

	const itemsQuery = `
SELECT provider_id, item_key, title, status, notes, updated_at, completed_at
FROM checklist_items
WHERE provider_id = $1
ORDER BY position`
	rows, err := r.DB.QueryContext(ctx, itemsQuery, providerID)
	if err != nil {
		return Provider{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		item, err := scanChecklistItem(rows, &id)
		if err != nil {
			return Provider{}, err
		}
		provider.Checklist = append(provider.Checklist, item)
	}
	if err := rows.Err(); err != nil {
		return Provider{}, err
	}
	return provider, nil
}

func (r *PGRepo) Create(ctx context.Context, provider Provider) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const insertProvider = `
INSERT INTO providers (id, name, provider_type_code, jurisdiction_code,
  onboard_status, contact_name, contact_email, contact_phone, org_name, org_npi,
  created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err = tx.ExecContext(ctx, insertProvider,
		provider.ID,
		nullableString(provider.Name),
		nullableString(provider.ProviderTypeCode),
		nullableString(provider.JurisdictionCode),
		provider.Onboard.Status,
		nullableString(provider.Onboard.ContactName),
		nullableString(provider.Onboard.ContactEmail),
		nullableString(provider.Onboard.ContactPhone),
		nullableString(provider.Onboard.OrgName),
		nullableString(provider.Onboard.OrgNPI),
		provider.CreatedAt,
		provider.UpdatedAt,
	); err != nil {
		return err
	}

	const insertItem = `
INSERT INTO checklist_items (provider_id, item_key, title, status, notes, position, updated_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, item := range provider.Checklist {
		if _, err = tx.ExecContext(ctx, insertItem,
			provider.ID,
			item.Key,
			item.Title,
			item.Status,
			nullableString(item.Notes),
			i,
			item.UpdatedAt,
			item.CompletedAt,
		); err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}

func (r *PGRepo) UpdateMeta(ctx context.Context, provider Provider) error {
	const query = `
UPDATE providers SET
  name = $2,
  provider_type_code = $3,
  jurisdiction_code = $4,
  onboard_status = $5,
  contact_name = $6,
  contact_email = $7,
  contact_phone = $8,
  org_name = $9,
  org_npi = $10,
  updated_at = $11
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		provider.ID,
		nullableString(provider.Name),
		nullableString(provider.ProviderTypeCode),
		nullableString(provider.JurisdictionCode),
		provider.Onboard.Status,
		nullableString(provider.Onboard.ContactName),
		nullableString(provider.Onboard.ContactEmail),
		nullableString(provider.Onboard.ContactPhone),
		nullableString(provider.Onboard.OrgName),
		nullableString(provider.Onboard.OrgNPI),
		provider.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) SaveChecklistItem(ctx context.Context, providerID string, item ChecklistItem) error {
	const query = `
UPDATE checklist_items SET
  status = $3,
  notes = $4,
  updated_at = $5,
  completed_at = $6
WHERE provider_id = $1 AND item_key = $2`
	res, err := r.DB.ExecContext(ctx, query,
		providerID,
		item.Key,
		item.Status,
		nullableString(item.Notes),
		item.UpdatedAt,
		item.CompletedAt,
	)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProvider(row rowScanner) (Provider, error) {
	var provider Provider
	var name, typeCode, jurisdiction sql.NullString
	var contactName, contactEmail, contactPhone, orgName, orgNPI sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&provider.ID,
		&name,
		&typeCode,
		&jurisdiction,
		&provider.Onboard.Status,
		&contactName,
		&contactEmail,
		&contactPhone,
		&orgName,
		&orgNPI,
		&provider.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return Provider{}, err
	}
	provider.Name = name.String
	provider.ProviderTypeCode = typeCode.String
	provider.JurisdictionCode = jurisdiction.String
	provider.Onboard.ContactName = contactName.String
	provider.Onboard.ContactEmail = contactEmail.String
	provider.Onboard.ContactPhone = contactPhone.String
	provider.Onboard.OrgName = orgName.String
	provider.Onboard.OrgNPI = orgNPI.String
	if updatedAt.Valid {
		provider.UpdatedAt = updatedAt.Time
	} else {
		provider.UpdatedAt = time.Now().UTC()
	}
	return provider, nil
}

func scanChecklistItem(row rowScanner, providerID *string) (ChecklistItem, error) {
	var item ChecklistItem
	var notes sql.NullString
	var completedAt sql.NullTime
	err := row.Scan(
		providerID,
		&item.Key,
		&item.Title,
		&item.Status,
		&notes,
		&item.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		return ChecklistItem{}, err
	}
	item.Notes = notes.String
	if completedAt.Valid {
		t := completedAt.Time
		item.CompletedAt = &t
	}
	return item, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
