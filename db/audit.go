package db

import (
	"fmt"
	"time"

	"github.com/averyreid/vera/auditmodels"
	"github.com/sirupsen/logrus"
	rethink "gopkg.in/gorethink/gorethink.v3"
)

//RecordVerification inserts a record of a single role grant or revoke into
//the audit trail.
func (db *Connection) RecordVerification(guildID, userID, action, actor string) error {
	record := auditmodels.VerificationRecord{
		GuildID:   guildID,
		UserID:    userID,
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now(),
	}
	resp, err := rethink.Table(verificationsTable).Insert(record).RunWrite(db.session)
	if err != nil {
		logrus.Warnf("Encountered error inserting verification record %v into database: %v.", record, err)
		return err
	} else if resp.Errors > 0 {
		err := fmt.Errorf("%v", resp.FirstError)
		logrus.Warnf("Encountered error appending verification record to DB: %v", err)
		return err
	}
	return nil
}

//RecentVerifications returns up to limit of the most recent verification
//records for the given guild, newest first.
func (db *Connection) RecentVerifications(guildID string, limit int) ([]auditmodels.VerificationRecord, error) {
	filter := map[string]interface{}{
		"guild_id": guildID,
	}
	logrus.Debugf("Looking up verification records with filter %#v", filter)
	query := rethink.Table(verificationsTable).
		Filter(filter).
		OrderBy(rethink.Desc("timestamp")).
		Limit(limit)
	res, err := query.Run(db.session)
	if err != nil {
		logrus.Warnf("Encountered error looking up verification records for guild %v in database: %v.", guildID, err)
		return nil, err
	}
	defer res.Close()
	var records []auditmodels.VerificationRecord
	if res.IsNil() {
		return nil, nil
	}
	err = res.All(&records)
	if err != nil {
		logrus.Warnf("Encountered error looking up verification records for guild %v in database: %v.", guildID, err)
		return nil, err
	}
	return records, nil
}
