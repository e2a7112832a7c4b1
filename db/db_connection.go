package db

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	rethink "gopkg.in/gorethink/gorethink.v3"
)

const dbAddrEnvVar string = "VERA_DB_ADDR"
const dbNameDefault string = "vera"
const dbNameEnvVar string = "VERA_DB_NAME"
const baseDbPoolConnections int = 2
const maxDbPoolConnections int = 10

const verificationsTable string = "verifications"

//Connection contains a handle to the audit trail database
type Connection struct {
	session *rethink.Session
}

//Init creates a new connection pool for the database at the address provided
//by the relevant environment variable. The audit trail is optional: when no
//address is configured, Init returns a nil connection and the bot runs
//without one.
func Init() (*Connection, error) {
	//Get DB address from env
	rethinkDBAddr, exists := os.LookupEnv(dbAddrEnvVar)
	if !exists {
		logrus.Warnf("`%v` env variable was not set, running without a verification audit trail", dbAddrEnvVar)
		return nil, nil
	}
	//Get DB name from env
	dbName, exists := os.LookupEnv(dbNameEnvVar)
	if !exists {
		logrus.Warnf("DB name was not provided, falling back to default `%v`", dbNameDefault)
		dbName = dbNameDefault
	}
	//Create new connection pool to db
	session, err := rethink.Connect(rethink.ConnectOpts{
		Address:    rethinkDBAddr,
		Database:   dbName,
		InitialCap: baseDbPoolConnections,
		MaxOpen:    maxDbPoolConnections,
	})
	if err != nil {
		logrus.Errorf("Failed to create connection to rethinkdb instance at address %v because %v.", rethinkDBAddr, err)
		return nil, fmt.Errorf("failed to create connection to rethinkdb instance at address %v because %v", rethinkDBAddr, err)
	}

	res := Connection{
		session: session,
	}

	//Ensure database and required tables exist, and wait for it all to be ready
	res.CreateDatabase(dbName)
	res.CreateTables()

	return &res, nil
}

//Close cleanly terminates the database connection
func (db *Connection) Close() {
	logrus.Info("Terminating DB connection...")
	_ = db.session.Close()
}

//CreateDatabase ensures the audit trail database exists
func (db *Connection) CreateDatabase(dbName string) {
	_, err := rethink.DBCreate(dbName).RunWrite(db.session)
	if err != nil {
		logrus.Warnf("Failed to create %v DB due to error %v", dbName, err)
	}
	rethink.DB(dbName).Wait()
}

//CreateTables ensures all tables needed exist.
func (db *Connection) CreateTables() {
	//verifications table
	_, err := rethink.TableCreate(verificationsTable, rethink.TableCreateOpts{
		PrimaryKey: "id",
	}).RunWrite(db.session)
	if err != nil {
		logrus.Warnf("Failed to create verifications table due to error %v", err)
	}
	//Wait for all tables
	rethink.Table(verificationsTable).Wait()
}
