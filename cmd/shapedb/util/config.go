package util

import (
	"fmt"
	"strconv"

	"github.com/shapedb-project/shapedb/cmd/shapedb/dbx"
	"github.com/spf13/viper"
)

// ReadConfigDatabase reads database connection parameters from a JSON
// configuration file.
func ReadConfigDatabase(conffile string) (*dbx.DB, error) {
	viper.SetConfigFile(conffile)
	viper.SetConfigType("json")
	var ok bool
	if err := viper.ReadInConfig(); err != nil {
		if _, ok = err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("file not found: %s", conffile)
		} else {
			return nil, fmt.Errorf("error reading file: %s: %s", conffile, err)
		}
	}
	db := "database"
	return &dbx.DB{
		Host:     viper.GetString(db + ".host"),
		Port:     strconv.Itoa(viper.GetInt(db + ".port")),
		User:     viper.GetString(db + ".user"),
		Password: viper.GetString(db + ".password"),
		DBName:   viper.GetString(db + ".dbname"),
		SSLMode:  viper.GetString(db + ".sslmode"),
	}, nil
}
