package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "MIP Family Analysis Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the MIP family inheritance analysis API!"
	SERVICE_DESCRIPTION ServiceInfo = "Annotates variants with the inheritance models they follow in a family."

	SERVICE_ARTIFACT    ServiceInfo = "mipfam"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("se.scilifelab.mip:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
