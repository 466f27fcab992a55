package helper

import (
	"log"

	"hotel_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary khởi tạo client Cloudinary dùng chung cho toàn app.
// Handler upload ảnh loại phòng lấy lại client qua c.Locals("cld").
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Không khởi tạo được Cloudinary: %v", err)
	}
	return cld
}
