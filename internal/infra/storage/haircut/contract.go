package haircut

import "github.com/m04kA/SMC-VenueConsole/internal/infra/datastore"

// Store внешнее хранилище
type Store = datastore.Store
