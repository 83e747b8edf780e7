// @title FlashForge Service API
// @version 1.0.0
// @description API для опроса 3D-принтеров FlashForge по управляющему TCP-порту и отправки телеметрии в Kafka.
// @host localhost:8082
// @BasePath /api/v1
package main

import "github.com/iwtcode/flashforgeService/internal/app"

func main() {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
}
