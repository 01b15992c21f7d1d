package main

import "parcel_tracking/cmd/parceltrack/cmd"

// @title           Parcel Tracking API
// @version         1.0
// @description     Parcel registration, tracking history, delivery feedback and customer support.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cmd.Execute()
}
