package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/entity"
	"github.com/mentorpal/mentor-graphql-sub001/internal/domain/valueobject"
	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

// replaceOrgPermissions は所有者に紐づく委譲権限を全て置き換えます
// tableは (ownerColumn, org列, view_permission, edit_permission) を持つ必要があります
func replaceOrgPermissions(ctx context.Context, q database.Querier, table, ownerColumn, orgColumn string, ownerID uuid.UUID, perms []entity.OrgPermission) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM `+table+` WHERE `+ownerColumn+` = $1`, ownerID)
	for _, p := range perms {
		batch.Queue(
			`INSERT INTO `+table+` (`+ownerColumn+`, `+orgColumn+`, view_permission, edit_permission) VALUES ($1, $2, $3, $4)`,
			ownerID, p.OrgID, string(p.ViewPermission), string(p.EditPermission),
		)
	}
	return q.SendBatch(ctx, batch).Close()
}

// loadOrgPermissions は複数の所有者の委譲権限をまとめて取得します
func loadOrgPermissions(ctx context.Context, q database.Querier, table, ownerColumn, orgColumn string, ownerIDs []uuid.UUID) (map[uuid.UUID][]entity.OrgPermission, error) {
	result := make(map[uuid.UUID][]entity.OrgPermission, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return result, nil
	}

	rows, err := q.Query(ctx,
		`SELECT `+ownerColumn+`, `+orgColumn+`, view_permission, edit_permission FROM `+table+` WHERE `+ownerColumn+` = ANY($1)`,
		ownerIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ownerID    uuid.UUID
			p          entity.OrgPermission
			view, edit string
		)
		if err := rows.Scan(&ownerID, &p.OrgID, &view, &edit); err != nil {
			return nil, err
		}
		p.ViewPermission = valueobject.PermissionLevel(view)
		p.EditPermission = valueobject.PermissionLevel(edit)
		result[ownerID] = append(result[ownerID], p)
	}
	return result, rows.Err()
}
