// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	queueColumns = `
			id,
			entity_table,
			entity_id,
			operation,
			payload,
			base_revision,
			seq,
			enqueued_at,
			updated_at,
			attempt_count,
			next_attempt_at,
			last_error,
			status`

	selectQueueEntryForEntity = `
		SELECT
			id,
			operation
		FROM sync_queue
		WHERE entity_table = ? AND entity_id = ?;`

	insertQueueEntry = `
		INSERT INTO sync_queue (
			id,
			entity_table,
			entity_id,
			operation,
			payload,
			base_revision,
			seq,
			enqueued_at,
			updated_at,
			attempt_count,
			next_attempt_at,
			last_error,
			status
		) VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?, 0, ?, '', 'pending');`

	// a failed entry becomes pending again with a fresh attempt budget
	coalesceQueueEntry = `
		UPDATE sync_queue SET
			operation = ?,
			payload = ?,
			base_revision = ?,
			seq = seq + 1,
			updated_at = ?,
			attempt_count = CASE WHEN status = 'failed' THEN 0 ELSE attempt_count END,
			next_attempt_at = CASE WHEN status = 'failed' THEN ? ELSE next_attempt_at END,
			last_error = CASE WHEN status = 'failed' THEN '' ELSE last_error END,
			status = 'pending'
		WHERE id = ?;`

	selectDueQueueEntries = `
		SELECT` + queueColumns + `
		FROM sync_queue
		WHERE status = 'pending' AND next_attempt_at <= ?
		ORDER BY enqueued_at, id
		LIMIT ?;`

	selectFailedQueueEntries = `
		SELECT` + queueColumns + `
		FROM sync_queue
		WHERE status = 'failed'
		ORDER BY enqueued_at, id;`

	countQueueByStatus = `
		SELECT
			status,
			COUNT(*)
		FROM sync_queue
		GROUP BY status;`

	selectQueueEntryByID = `
		SELECT` + queueColumns + `
		FROM sync_queue
		WHERE id = ?;`

	selectQueueSeq = `
		SELECT
			seq,
			operation
		FROM sync_queue
		WHERE id = ?;`

	deleteQueueEntry = `
		DELETE FROM sync_queue
		WHERE id = ?;`

	rebaseQueueEntry = `
		UPDATE sync_queue SET
			base_revision = ?,
			operation = ?
		WHERE id = ?;`

	recordQueueFailure = `
		UPDATE sync_queue SET
			attempt_count = ?,
			next_attempt_at = ?,
			last_error = ?,
			status = ?
		WHERE id = ?;`

	retryFailedQueueEntry = `
		UPDATE sync_queue SET
			status = 'pending',
			attempt_count = 0,
			next_attempt_at = ?,
			last_error = ''
		WHERE entity_table = ? AND entity_id = ? AND status = 'failed';`

	discardFailedQueueEntry = `
		DELETE FROM sync_queue
		WHERE entity_table = ? AND entity_id = ? AND status = 'failed';`

	queueEntryExists = `
		SELECT COUNT(*)
		FROM sync_queue
		WHERE entity_table = ? AND entity_id = ?;`

	selectSyncCursor = `
		SELECT
			last_successful_sync_at,
			remote_watermark
		FROM sync_cursor
		WHERE id = 1;`

	updateSyncCursor = `
		UPDATE sync_cursor SET
			last_successful_sync_at = ?,
			remote_watermark = ?
		WHERE id = 1;`

	insertConflict = `
		INSERT INTO sync_conflicts (
			id,
			entity_table,
			entity_id,
			local_payload,
			remote_payload,
			local_updated_at,
			remote_updated_at,
			remote_revision,
			resolution,
			detected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectRecentConflicts = `
		SELECT
			id,
			entity_table,
			entity_id,
			local_payload,
			remote_payload,
			local_updated_at,
			remote_updated_at,
			remote_revision,
			resolution,
			detected_at
		FROM sync_conflicts
		ORDER BY detected_at DESC, id DESC
		LIMIT ?;`
)
