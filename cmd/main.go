package main

import (
    "backend/config"
    "backend/routes"
    "backend/services"
    "backend/utils"
)

func main() {
    config.InitDB()
    utils.InitMailer()

    rt := services.NewRealtimeHub()
    services.InitAdvisoryDeps(config.DB, rt)

    r := routes.SetupRouter(rt)
    r.Run(":8080")
}
